package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"urlshot/pkg/domain"

	"github.com/google/uuid"
)

type PgCapture struct {
	ID uuid.UUID `db:"id"`

	OriginalURL   string `db:"original_url"`
	AnonymizedURL string `db:"anonymized_url"`
	DecodedURL    string `db:"decoded_url"`
	FinalURL      string `db:"final_url"`

	RedirectChain json.RawMessage `db:"redirect_chain"`
	Identifiers   json.RawMessage `db:"identifiers"`

	OriginalScreenshot sql.NullString `db:"original_screenshot"`
	FinalScreenshot    sql.NullString `db:"final_screenshot"`

	Status  string         `db:"status"`
	Message sql.NullString `db:"message"`

	CreatedAt time.Time    `db:"created_at"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgCapture) ToDomain() (*domain.Capture, error) {
	var chain domain.RedirectChain
	if err := json.Unmarshal(p.RedirectChain, &chain); err != nil {
		return nil, fmt.Errorf("could not unmarshal redirect chain: %w", err)
	}
	var ids []domain.Identifier
	if err := json.Unmarshal(p.Identifiers, &ids); err != nil {
		return nil, fmt.Errorf("could not unmarshal identifiers: %w", err)
	}

	return &domain.Capture{
		ID:                 domain.CaptureID(p.ID),
		OriginalURL:        p.OriginalURL,
		AnonymizedURL:      p.AnonymizedURL,
		DecodedURL:         p.DecodedURL,
		FinalURL:           p.FinalURL,
		RedirectChain:      chain,
		Identifiers:        ids,
		OriginalScreenshot: p.OriginalScreenshot.String,
		FinalScreenshot:    p.FinalScreenshot.String,
		Status:             domain.CaptureStatus(p.Status),
		Message:            p.Message.String,
		CreatedAt:          p.CreatedAt,
	}, nil
}

func (p *PgCapture) FromDomain(capture domain.Capture) error {
	chain, err := json.Marshal(capture.RedirectChain)
	if err != nil {
		return fmt.Errorf("could not marshal redirect chain: %w", err)
	}
	ids := capture.Identifiers
	if ids == nil {
		ids = make([]domain.Identifier, 0)
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("could not marshal identifiers: %w", err)
	}

	*p = PgCapture{
		ID:            uuid.UUID(capture.ID),
		OriginalURL:   capture.OriginalURL,
		AnonymizedURL: capture.AnonymizedURL,
		DecodedURL:    capture.DecodedURL,
		FinalURL:      capture.FinalURL,
		RedirectChain: chain,
		Identifiers:   idsJSON,
		OriginalScreenshot: sql.NullString{
			String: capture.OriginalScreenshot,
			Valid:  capture.OriginalScreenshot != "",
		},
		FinalScreenshot: sql.NullString{
			String: capture.FinalScreenshot,
			Valid:  capture.FinalScreenshot != "",
		},
		Status: string(capture.Status),
		Message: sql.NullString{
			String: capture.Message,
			Valid:  capture.Message != "",
		},
		CreatedAt: capture.CreatedAt,
	}

	return nil
}

func pgCapturesToDomain(captures []PgCapture) ([]domain.Capture, error) {
	out := make([]domain.Capture, 0, len(captures))
	for _, capture := range captures {
		d, err := capture.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
