package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/nepem-ufsc/nepemcert/internal/model"
)

type CodeRepository interface {
	Insert(ctx context.Context, code *model.VerificationCode) error
	FindByCode(ctx context.Context, code string) (*model.VerificationCode, error)
	Exists(ctx context.Context, code string) (bool, error)
}

type codeRepository struct {
	db *sqlx.DB
}

func NewCodeRepository(db *sqlx.DB) CodeRepository {
	return &codeRepository{db: db}
}

func (r *codeRepository) Insert(ctx context.Context, code *model.VerificationCode) error {
	query := `
		INSERT INTO verification_codes (code, participant_name, event_name, event_date,
		                                event_place, workload, verification_url, qr_base64, issued_at)
		VALUES (:code, :participant_name, :event_name, :event_date,
		        :event_place, :workload, :verification_url, :qr_base64, :issued_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, code)
	return err
}

// FindByCode devolve (nil, nil) quando o código não existe; erro apenas em
// falha de armazenamento. Cabe ao serviço traduzir a ausência em ErrCodeNotFound.
func (r *codeRepository) FindByCode(ctx context.Context, code string) (*model.VerificationCode, error) {
	var vc model.VerificationCode
	err := r.db.GetContext(ctx, &vc,
		"SELECT * FROM verification_codes WHERE code = ?", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &vc, nil
}

func (r *codeRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM verification_codes WHERE code = ?)", code,
	).Scan(&exists)
	return exists, err
}
