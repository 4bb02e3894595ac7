package postgres

import (
	"context"
	"errors"

	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	query := `
        INSERT INTO members (member_id, name, phone, points)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.pool.Exec(ctx, query, member.MemberID, member.Name, member.Phone, member.Points)
	return err
}

func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (*models.Member, error) {
	query := `SELECT member_id, name, phone, points FROM members WHERE member_id = $1`
	member := &models.Member{}
	err := r.pool.QueryRow(ctx, query, memberID).Scan(
		&member.MemberID, &member.Name, &member.Phone, &member.Points)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadLoyaltyState(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (r *MemberRepository) GetAll(ctx context.Context) (map[string]*models.Member, error) {
	rows, err := r.pool.Query(ctx, `SELECT member_id, name, phone, points FROM members`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make(map[string]*models.Member)
	for rows.Next() {
		member := &models.Member{}
		if err := rows.Scan(&member.MemberID, &member.Name, &member.Phone, &member.Points); err != nil {
			return nil, err
		}
		members[member.MemberID] = member
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, member := range members {
		if err := r.loadLoyaltyState(ctx, member); err != nil {
			return nil, err
		}
	}
	return members, nil
}

// NextMemberNumber draws from a database sequence so concurrent
// registrations cannot collide.
func (r *MemberRepository) NextMemberNumber(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT nextval('member_number_seq')`).Scan(&n)
	return n, err
}

func (r *MemberRepository) UpdatePoints(ctx context.Context, memberID string, points int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE members SET points = $1 WHERE member_id = $2`, points, memberID)
	return err
}

func (r *MemberRepository) UpsertFavorite(ctx context.Context, memberID, menuItemID string, count int) error {
	query := `
        INSERT INTO favorite_items (member_id, menu_item_id, count)
        VALUES ($1, $2, $3)
        ON CONFLICT (member_id, menu_item_id) DO UPDATE SET count = EXCLUDED.count
    `
	_, err := r.pool.Exec(ctx, query, memberID, menuItemID, count)
	return err
}

func (r *MemberRepository) GetFavorites(ctx context.Context, memberID string) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT menu_item_id, count FROM favorite_items WHERE member_id = $1`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make(map[string]int)
	for rows.Next() {
		var itemID string
		var count int
		if err := rows.Scan(&itemID, &count); err != nil {
			return nil, err
		}
		favorites[itemID] = count
	}
	return favorites, rows.Err()
}

func (r *MemberRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM members").Scan(&count)
	return count, err
}

func (r *MemberRepository) loadLoyaltyState(ctx context.Context, member *models.Member) error {
	favorites, err := r.GetFavorites(ctx, member.MemberID)
	if err != nil {
		return err
	}
	member.FavoriteItems = favorites

	rows, err := r.pool.Query(ctx,
		`SELECT allergy_id, member_id, allergen, severity FROM member_allergies WHERE member_id = $1`,
		member.MemberID)
	if err != nil {
		return err
	}
	defer rows.Close()

	member.Allergies = nil
	for rows.Next() {
		var allergy models.Allergy
		if err := rows.Scan(&allergy.AllergyID, &allergy.MemberID, &allergy.Allergen, &allergy.Severity); err != nil {
			return err
		}
		member.Allergies = append(member.Allergies, allergy)
	}
	return rows.Err()
}
