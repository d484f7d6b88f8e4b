package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rifa-pro/internal/domain"
	"github.com/tu-usuario/rifa-pro/internal/domain/entity"
	"github.com/tu-usuario/rifa-pro/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `id, name, email, whatsapp, city, slug, role, password_hash, pix_key, is_active, created_at, updated_at`

// ProfileRepo implementação de ProfileRepository (usável com pool ou tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste um novo perfil.
func (r *ProfileRepo) Create(p *entity.Profile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Email, p.WhatsApp, p.City, p.Slug, p.Role,
		p.PasswordHash, p.PixKey, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) scanOne(query string, args ...any) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.Email, &p.WhatsApp, &p.City, &p.Slug, &p.Role,
		&p.PasswordHash, &p.PixKey, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// GetByID obtém um perfil por ID.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	return r.scanOne(`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

// GetByIDForUpdate obtém o perfil e bloqueia a linha (SELECT FOR UPDATE).
func (r *ProfileRepo) GetByIDForUpdate(id string) (*entity.Profile, error) {
	return r.scanOne(`SELECT `+profileColumns+` FROM profiles WHERE id = $1 FOR UPDATE`, id)
}

// GetByEmail obtém um perfil pelo e-mail.
func (r *ProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	return r.scanOne(`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
}

// GetBySlug obtém um perfil pelo slug de afiliado.
func (r *ProfileRepo) GetBySlug(slug string) (*entity.Profile, error) {
	return r.scanOne(`SELECT `+profileColumns+` FROM profiles WHERE slug = $1`, slug)
}

// ListByRole lista perfis do papel com paginação. Role vazio lista todos.
func (r *ProfileRepo) ListByRole(role string, limit, offset int) ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE ($1 = '' OR role = $1) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.WhatsApp, &p.City, &p.Slug, &p.Role,
			&p.PasswordHash, &p.PixKey, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza os campos mutáveis do perfil.
func (r *ProfileRepo) Update(p *entity.Profile) error {
	query := `
		UPDATE profiles
		SET name = $2, whatsapp = $3, city = $4, pix_key = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.WhatsApp, p.City, p.PixKey, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// Deactivate desativa o perfil (soft delete, nunca remove a linha).
func (r *ProfileRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE profiles SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate profile: %w", err)
	}
	return nil
}
