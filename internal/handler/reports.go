package handler

import (
	"net/http"
	"strconv"

	"agencyledger/internal/dto"
	"agencyledger/internal/infra"
	"agencyledger/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler { return &ReportsHandler{svc: svc} }

// OwnersSummary godoc
// @Summary      Owners summary
// @Description  Credit, debit and balance of every active owner in the period.
// @Description  An omitted date is copied from the other; both omitted means today.
// @Tags         reports
// @Produce      json
// @Param        from query string false "From date (YYYY-MM-DD)"
// @Param        to   query string false "To date (YYYY-MM-DD)"
// @Param        sort query string false "name | activity" default(name)
// @Success      200 {object} dto.OwnersSummaryResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/reports/owners-summary [get]
func (h *ReportsHandler) OwnersSummary(c *gin.Context) {
	resp, err := h.svc.OwnersSummary(c.Request.Context(), reportQuery(c))
	if err != nil {
		writeError(c, err, "Failed to build owners summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Weekly godoc
// @Summary      Weekly report
// @Description  Per owner and per day: lines sold, day total, payments and running balance.
// @Tags         reports
// @Produce      json
// @Param        from query string true "From date (YYYY-MM-DD)"
// @Param        to   query string true "To date (YYYY-MM-DD)"
// @Success      200 {object} dto.WeeklyReportResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/weekly-reports [get]
func (h *ReportsHandler) Weekly(c *gin.Context) {
	resp, err := h.svc.Weekly(c.Request.Context(), reportQuery(c))
	if err != nil {
		writeError(c, err, "Failed to build weekly report")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportOwnersSummary godoc
// @Summary      Export owners summary
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from query string false "From date (YYYY-MM-DD)"
// @Param        to   query string false "To date (YYYY-MM-DD)"
// @Param        sort query string false "name | activity"
// @Success      200 {file} binary
// @Router       /api/reports/owners-summary/export [get]
func (h *ReportsHandler) ExportOwnersSummary(c *gin.Context) {
	resp, err := h.svc.OwnersSummary(c.Request.Context(), reportQuery(c))
	if err != nil {
		writeError(c, err, "Failed to export owners summary")
		return
	}
	sendXLSX(c, "owners_summary_"+resp.From+"_"+resp.To+".xlsx", summarySheet(resp))
}

// ExportWeekly godoc
// @Summary      Export weekly report
// @Description  One worksheet per owner.
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from query string true "From date (YYYY-MM-DD)"
// @Param        to   query string true "To date (YYYY-MM-DD)"
// @Success      200 {file} binary
// @Router       /api/weekly-reports/export [get]
func (h *ReportsHandler) ExportWeekly(c *gin.Context) {
	resp, err := h.svc.Weekly(c.Request.Context(), reportQuery(c))
	if err != nil {
		writeError(c, err, "Failed to export weekly report")
		return
	}
	sendXLSX(c, "weekly_"+resp.From+"_"+resp.To+".xlsx", weeklySheets(resp)...)
}

func reportQuery(c *gin.Context) dto.ReportQuery {
	return dto.ReportQuery{From: c.Query("from"), To: c.Query("to"), Sort: c.Query("sort")}
}

func summarySheet(r *dto.OwnersSummaryResponse) infra.Sheet {
	s := infra.Sheet{
		Name:    "Owners",
		Title:   "Owners summary " + r.From + " to " + r.To,
		Columns: []string{"Owner", "Credit", "Debit", "Balance", "Last activity"},
		Rows:    make([][]interface{}, len(r.Owners)),
	}
	for i, o := range r.Owners {
		last := ""
		if o.LastActivity != nil {
			last = o.LastActivity.Format("2006-01-02 15:04")
		}
		s.Rows[i] = []interface{}{o.OwnerName, o.TotalCredit, o.TotalDebit, o.Balance, last}
	}
	return s
}

func weeklySheets(r *dto.WeeklyReportResponse) []infra.Sheet {
	title := "Weekly report " + r.From + " to " + r.To
	if len(r.Owners) == 0 {
		return []infra.Sheet{{Name: "Weekly", Title: title}}
	}
	sheets := make([]infra.Sheet, 0, len(r.Owners))
	seen := map[string]int{}
	for _, o := range r.Owners {
		s := infra.Sheet{
			Name:    uniqueSheetName(o.OwnerName, seen),
			Title:   o.OwnerName + " / " + title,
			Columns: []string{"Date", "Material", "Qty", "Rate", "Total", "Day total", "Paid", "Balance"},
		}
		for _, d := range o.Entries {
			if len(d.Items) == 0 {
				s.Rows = append(s.Rows, []interface{}{d.Date, "", "", "", "", d.DayTotal, d.Paid, d.Balance})
				continue
			}
			for i, it := range d.Items {
				row := []interface{}{d.Date, it.Material, it.Qty, it.Rate, it.Total, "", "", ""}
				if i == len(d.Items)-1 {
					row[5], row[6], row[7] = d.DayTotal, d.Paid, d.Balance
				}
				s.Rows = append(s.Rows, row)
			}
		}
		sheets = append(sheets, s)
	}
	return sheets
}

// uniqueSheetName trims to the worksheet name limit, strips characters Excel
// rejects and suffixes repeats.
func uniqueSheetName(name string, seen map[string]int) string {
	clean := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		clean = append(clean, r)
	}
	if len(clean) > 28 {
		clean = clean[:28]
	}
	base := string(clean)
	if base == "" {
		base = "Owner"
	}
	seen[base]++
	if n := seen[base]; n > 1 {
		return base + " " + strconv.Itoa(n)
	}
	return base
}
