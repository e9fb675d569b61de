package service

import (
	"time"

	"agencyledger/internal/dto"
	"agencyledger/internal/model"
)

func materialToResponse(m *model.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		MaterialID:  m.ID,
		Name:        m.Name,
		Unit:        m.Unit,
		RatePerUnit: m.RatePerUnit,
		IsActive:    m.IsActive,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ownerToResponse(o *model.Owner) dto.OwnerResponse {
	return dto.OwnerResponse{
		OwnerID:     o.ID,
		Name:        o.Name,
		ContactInfo: o.ContactInfo,
		IsActive:    o.IsActive,
		UpdatedAt:   o.UpdatedAt,
	}
}

func vehicleToResponse(v *model.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		VehicleID:     v.ID,
		OwnerID:       v.OwnerID,
		VehicleNumber: v.VehicleNumber,
		LastUsedAt:    v.LastUsedAt,
	}
}

func billToResponse(b *model.Bill) dto.BillResponse {
	resp := dto.BillResponse{
		BillID:        b.ID,
		OwnerID:       b.OwnerID,
		VehicleNumber: b.VehicleNumber,
		TotalAmount:   b.TotalAmount,
		DailyBillNo:   b.DailyBillNo,
		BillDate:      b.BillDate.Format(time.DateOnly),
		IncludePass:   b.IncludePass,
		HasDocument:   b.PDFPath != nil,
		BillTimestamp: b.BillTimestamp,
	}
	if b.Owner != nil {
		resp.OwnerName = b.Owner.Name
	}
	return resp
}

func transactionToResponse(t *model.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		TransactionID:        t.ID,
		OwnerID:              t.OwnerID,
		MaterialID:           t.MaterialID,
		VehicleNumber:        t.VehicleNumber,
		Quantity:             t.Quantity,
		RateAtSale:           t.RateAtSale,
		TotalCost:            t.TotalCost,
		BillID:               t.BillID,
		Mattam:               t.Mattam,
		GrillMattam:          t.GrillMattam,
		MattamChecked:        t.MattamChecked,
		TransactionTimestamp: t.TransactionTimestamp,
	}
	if t.Material != nil {
		resp.MaterialName = t.Material.Name
		resp.Unit = t.Material.Unit
	}
	return resp
}

func passToResponse(p *model.Pass) *dto.PassResponse {
	if p == nil {
		return nil
	}
	return &dto.PassResponse{
		PassID:        p.ID,
		OwnerID:       p.OwnerID,
		VehicleNumber: p.VehicleNumber,
		PassAmount:    p.PassAmount,
		BillID:        p.BillID,
		PassDate:      p.PassDate,
	}
}

func paymentToResponse(p *model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		PaymentID:   p.ID,
		OwnerID:     p.OwnerID,
		Amount:      p.Amount,
		Mode:        p.Mode,
		Notes:       p.Notes,
		PaymentDate: p.PaymentDate,
	}
}
