package service

import (
	"context"
	"os"
	"time"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/ledger"
	"agencyledger/internal/model"
	"agencyledger/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DocumentRenderer turns a committed bill (owner, items with materials and
// pass preloaded) into a printable file and returns its path.
type DocumentRenderer interface {
	Render(b *model.Bill) (string, error)
}

type BillService interface {
	Create(ctx context.Context, req dto.CreateBillRequest) (*dto.CreateBillResponse, error)
	List(ctx context.Context, filter dto.BillFilter) ([]dto.BillResponse, error)
	Get(ctx context.Context, id int64) (*dto.BillDetailResponse, error)
	// DocumentPath returns the stored printable file, NotFound when none exists.
	DocumentPath(ctx context.Context, id int64) (string, error)
	RegenerateDocument(ctx context.Context, id int64) (*dto.DocumentOutcome, error)
}

// BillSettings are the business constants applied to every bill.
type BillSettings struct {
	PassAmount decimal.Decimal
	Location   *time.Location // calendar used for daily bill numbers
	Clock      Clock
}

type billService struct {
	repo      repository.BillRepository
	materials repository.MaterialRepository
	owners    repository.OwnerRepository
	vehicles  repository.VehicleRepository
	renderer  DocumentRenderer
	settings  BillSettings
}

func NewBillService(
	repo repository.BillRepository,
	materials repository.MaterialRepository,
	owners repository.OwnerRepository,
	vehicles repository.VehicleRepository,
	renderer DocumentRenderer,
	settings BillSettings,
) BillService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &billService{
		repo:      repo,
		materials: materials,
		owners:    owners,
		vehicles:  vehicles,
		renderer:  renderer,
		settings:  settings,
	}
}

type billLine struct {
	materialID int64
	quantity   decimal.Decimal
	mattam     *string
	grill      bool
	checked    bool
}

// ── Create ───────────────────────────────────────────────────────────────────
//   1. Validate header and quantities (no writes yet)
//   2. BEGIN TX: read all rates at once, reject unknown materials,
//      take the daily number, insert bill + lines + pass, upsert vehicle
//   3. COMMIT
//   4. Render the document; its outcome is reported, never rolled back

func (s *billService) Create(ctx context.Context, req dto.CreateBillRequest) (*dto.CreateBillResponse, error) {
	vehicle := NormalizeVehicle(req.VehicleNumber)
	if req.OwnerID <= 0 || vehicle == "" || len(req.Items) == 0 {
		return nil, apierror.Validation("owner_id, vehicle_number and at least one item are required")
	}

	lines := make([]billLine, 0, len(req.Items))
	ids := make([]int64, 0, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity == nil {
			return nil, apierror.Validationf("item %d: quantity is required", i+1)
		}
		qty := item.Quantity.Round(3)
		if !qty.IsPositive() {
			return nil, apierror.Validationf("item %d: quantity must be greater than zero", i+1)
		}
		line := billLine{
			materialID: item.MaterialID,
			quantity:   qty,
			grill:      item.GrillMattam,
			checked:    item.MattamChecked,
		}
		if item.Mattam != nil {
			m := string(*item.Mattam)
			line.mattam = &m
		}
		lines = append(lines, line)
		ids = append(ids, item.MaterialID)
	}

	owner, err := s.owners.FindByID(ctx, req.OwnerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("owner not found")
		}
		return nil, apierror.Abort("Failed to create bill", err)
	}

	now := s.settings.Clock.now()
	var bill model.Bill
	materials := make(map[int64]model.Material, len(ids))

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		found, err := s.materials.FindByIDs(ctx, tx, ids)
		if err != nil {
			return err
		}
		for _, m := range found {
			materials[m.ID] = m
		}

		total := decimal.Zero
		items := make([]model.Transaction, 0, len(lines))
		for i, l := range lines {
			m, ok := materials[l.materialID]
			if !ok {
				return apierror.Validationf("item %d: unknown material %d", i+1, l.materialID)
			}
			lineTotal := l.quantity.Mul(m.RatePerUnit).Round(2)
			total = total.Add(lineTotal)
			items = append(items, model.Transaction{
				OwnerID:              owner.ID,
				MaterialID:           m.ID,
				VehicleNumber:        vehicle,
				Quantity:             l.quantity,
				RateAtSale:           m.RatePerUnit,
				TotalCost:            lineTotal,
				Mattam:               l.mattam,
				GrillMattam:          l.grill,
				MattamChecked:        l.checked,
				TransactionTimestamp: now,
			})
		}

		var pass *model.Pass
		if req.IncludePass {
			total = total.Add(s.settings.PassAmount)
			pass = &model.Pass{
				OwnerID:       owner.ID,
				VehicleNumber: vehicle,
				PassAmount:    s.settings.PassAmount,
				PassDate:      now,
			}
		}

		billDate := ledger.CalendarDate(now, s.settings.Location)
		dailyNo, err := s.repo.NextDailyNo(ctx, tx, billDate)
		if err != nil {
			return err
		}

		bill = model.Bill{
			OwnerID:       owner.ID,
			VehicleNumber: vehicle,
			TotalAmount:   total,
			DailyBillNo:   dailyNo,
			BillDate:      billDate,
			IncludePass:   req.IncludePass,
			BillTimestamp: now,
			Items:         items,
			Pass:          pass,
		}
		if err := s.repo.Create(ctx, tx, &bill); err != nil {
			return err
		}

		return s.vehicles.Upsert(ctx, tx, &model.Vehicle{
			OwnerID:       owner.ID,
			VehicleNumber: vehicle,
			LastUsedAt:    now,
		})
	})
	if txErr != nil {
		if apierror.Is(txErr, apierror.KindValidation) {
			return nil, txErr
		}
		return nil, apierror.Abort("Failed to create bill", txErr)
	}

	bill.Owner = owner
	resp := &dto.CreateBillResponse{
		Message: "Bill created successfully",
		Bill:    billToResponse(&bill),
		Items:   make([]dto.TransactionResponse, len(bill.Items)),
		Pass:    passToResponse(bill.Pass),
	}
	for i := range bill.Items {
		item := bill.Items[i]
		m := materials[item.MaterialID]
		item.Material = &m
		resp.Items[i] = transactionToResponse(&item)
	}

	resp.Document = s.generateDocument(ctx, bill.ID)
	resp.Bill.HasDocument = resp.Document.Status == dto.DocumentGenerated
	return resp, nil
}

// generateDocument renders from the committed rows. Failures are logged and
// reported in the outcome only.
func (s *billService) generateDocument(ctx context.Context, billID int64) dto.DocumentOutcome {
	fail := func(err error) dto.DocumentOutcome {
		log.Warn().Err(err).Int64("bill_id", billID).Msg("bill document generation failed")
		return dto.DocumentOutcome{Status: dto.DocumentFailed, Error: err.Error()}
	}
	if s.renderer == nil {
		return dto.DocumentOutcome{Status: dto.DocumentFailed, Error: "document rendering is not configured"}
	}

	bill, err := s.repo.FindByID(ctx, billID)
	if err != nil {
		return fail(err)
	}
	path, err := s.renderer.Render(bill)
	if err != nil {
		return fail(err)
	}
	if err := s.repo.SetPDFPath(ctx, billID, path); err != nil {
		return fail(err)
	}
	return dto.DocumentOutcome{Status: dto.DocumentGenerated}
}

func (s *billService) List(ctx context.Context, filter dto.BillFilter) ([]dto.BillResponse, error) {
	bills, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BillResponse, len(bills))
	for i := range bills {
		resp[i] = billToResponse(&bills[i])
	}
	return resp, nil
}

func (s *billService) Get(ctx context.Context, id int64) (*dto.BillDetailResponse, error) {
	bill, err := s.findBill(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.BillDetailResponse{
		Bill:  billToResponse(bill),
		Items: make([]dto.TransactionResponse, len(bill.Items)),
		Pass:  passToResponse(bill.Pass),
	}
	for i := range bill.Items {
		resp.Items[i] = transactionToResponse(&bill.Items[i])
	}
	return resp, nil
}

func (s *billService) DocumentPath(ctx context.Context, id int64) (string, error) {
	bill, err := s.findBill(ctx, id)
	if err != nil {
		return "", err
	}
	if bill.PDFPath == nil {
		return "", apierror.NotFound("bill document has not been generated")
	}
	if _, err := os.Stat(*bill.PDFPath); err != nil {
		return "", apierror.NotFound("bill document file is missing")
	}
	return *bill.PDFPath, nil
}

func (s *billService) RegenerateDocument(ctx context.Context, id int64) (*dto.DocumentOutcome, error) {
	if _, err := s.findBill(ctx, id); err != nil {
		return nil, err
	}
	outcome := s.generateDocument(ctx, id)
	return &outcome, nil
}

func (s *billService) findBill(ctx context.Context, id int64) (*model.Bill, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("bill not found")
		}
		return nil, err
	}
	return bill, nil
}
