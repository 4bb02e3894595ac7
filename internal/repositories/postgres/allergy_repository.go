package postgres

import (
	"context"
	"errors"

	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AllergyRepository struct {
	pool *pgxpool.Pool
}

func NewAllergyRepository(pool *pgxpool.Pool) *AllergyRepository {
	return &AllergyRepository{pool: pool}
}

// Create inserts the allergy and returns the id generated by the database.
func (r *AllergyRepository) Create(ctx context.Context, allergy *models.Allergy) (int64, error) {
	query := `
        INSERT INTO member_allergies (member_id, allergen, severity)
        VALUES ($1, $2, $3)
        RETURNING allergy_id
    `
	var id int64
	err := r.pool.QueryRow(ctx, query, allergy.MemberID, allergy.Allergen, allergy.Severity).Scan(&id)
	if err != nil {
		return 0, err
	}
	allergy.AllergyID = id
	return id, nil
}

func (r *AllergyRepository) GetByID(ctx context.Context, allergyID int64) (*models.Allergy, error) {
	query := `SELECT allergy_id, member_id, allergen, severity FROM member_allergies WHERE allergy_id = $1`
	allergy := &models.Allergy{}
	err := r.pool.QueryRow(ctx, query, allergyID).Scan(
		&allergy.AllergyID, &allergy.MemberID, &allergy.Allergen, &allergy.Severity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return allergy, nil
}

func (r *AllergyRepository) GetAllForMember(ctx context.Context, memberID string) ([]models.Allergy, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT allergy_id, member_id, allergen, severity FROM member_allergies WHERE member_id = $1`,
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allergies []models.Allergy
	for rows.Next() {
		var allergy models.Allergy
		if err := rows.Scan(&allergy.AllergyID, &allergy.MemberID, &allergy.Allergen, &allergy.Severity); err != nil {
			return nil, err
		}
		allergies = append(allergies, allergy)
	}
	return allergies, rows.Err()
}

// Delete removes an allergy scoped to the owning member. Returns whether a
// row was actually deleted.
func (r *AllergyRepository) Delete(ctx context.Context, allergyID int64, memberID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM member_allergies WHERE allergy_id = $1 AND member_id = $2`,
		allergyID, memberID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
