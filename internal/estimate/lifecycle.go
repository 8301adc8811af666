package estimate

import (
	"log/slog"
	"slices"
)

// HasSignature reports whether a signature image is attached.
func (e *Estimate) HasSignature() bool {
	return len(e.SignatureImage) > 0
}

// IsApproved reports whether the estimate reached its terminal state.
func (e *Estimate) IsApproved() bool {
	return e.Status == StatusApproved
}

// UpdateSignature attaches the customer's signature image. The first
// signature stamps SignatureDate; clearing the image clears the date.
func (e *Estimate) UpdateSignature(image []byte) error {
	if err := e.checkMutable("update signature"); err != nil {
		return err
	}

	if len(image) == 0 {
		e.SignatureImage = nil
		e.SignatureDate = nil
		return nil
	}

	e.SignatureImage = slices.Clone(image)
	if e.SignatureDate == nil {
		signedAt := now()
		e.SignatureDate = &signedAt
	}
	return nil
}

// Approve moves a signed estimate to approved. Approving twice is a no-op;
// approving without a signature returns ErrSignatureRequired and leaves the
// estimate pending.
func (e *Estimate) Approve() error {
	if e.IsApproved() {
		return nil
	}
	if !e.HasSignature() {
		return ErrSignatureRequired
	}

	e.RecalculateTotals()
	e.Status = StatusApproved
	slog.Debug("estimate approved", "estimate_id", e.ID, "grand_total", e.GrandTotal)
	return nil
}
