package database

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"pulse-backend/internal/models"
)

var (
	ErrBadgeNotFound       = errors.New("badge not found")
	ErrBadgeAlreadyAwarded = errors.New("badge already awarded to employee")
)

// BadgeRepo handles badge and award database operations
type BadgeRepo struct{}

// NewBadgeRepo creates a new badge repository
func NewBadgeRepo() *BadgeRepo {
	return &BadgeRepo{}
}

// Create creates a new badge, assigning it a fresh ID
func (r *BadgeRepo) Create(b *models.Badge) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	_, err := DB.Exec(`
		INSERT INTO badges (id, name, description, icon, archived)
		VALUES (?, ?, ?, ?, ?)
	`, b.ID, b.Name, b.Description, b.Icon, b.Archived)
	return err
}

// GetByID retrieves a badge by ID
func (r *BadgeRepo) GetByID(id string) (*models.Badge, error) {
	b := &models.Badge{}

	err := DB.QueryRow(`
		SELECT id, name, description, icon, archived, created_at
		FROM badges WHERE id = ?
	`, id).Scan(&b.ID, &b.Name, &b.Description, &b.Icon, &b.Archived, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBadgeNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// List retrieves all badges
func (r *BadgeRepo) List() ([]*models.Badge, error) {
	rows, err := DB.Query(`
		SELECT id, name, description, icon, archived, created_at
		FROM badges ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []*models.Badge
	for rows.Next() {
		b := &models.Badge{}
		err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Icon, &b.Archived, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}

	return badges, rows.Err()
}

// SetArchived sets a badge's archived flag
func (r *BadgeRepo) SetArchived(id string, archived bool) error {
	result, err := DB.Exec("UPDATE badges SET archived = ? WHERE id = ?", archived, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBadgeNotFound
	}

	return nil
}

// Award grants a badge to an employee. Awarding the same badge twice
// returns ErrBadgeAlreadyAwarded.
func (r *BadgeRepo) Award(badgeID string, employeeID, awardedBy int64) (*models.BadgeAward, error) {
	var exists int
	err := DB.QueryRow(
		"SELECT COUNT(*) FROM badge_awards WHERE badge_id = ? AND employee_id = ?",
		badgeID, employeeID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, ErrBadgeAlreadyAwarded
	}

	_, err = DB.Exec(`
		INSERT INTO badge_awards (badge_id, employee_id, awarded_by)
		VALUES (?, ?, ?)
	`, badgeID, employeeID, awardedBy)
	if err != nil {
		return nil, err
	}

	award := &models.BadgeAward{}
	err = DB.QueryRow(`
		SELECT a.badge_id, b.name, a.employee_id, a.awarded_by, a.awarded_at
		FROM badge_awards a
		JOIN badges b ON b.id = a.badge_id
		WHERE a.badge_id = ? AND a.employee_id = ?
	`, badgeID, employeeID).Scan(&award.BadgeID, &award.BadgeName, &award.EmployeeID,
		&award.AwardedBy, &award.AwardedAt)
	if err != nil {
		return nil, err
	}

	return award, nil
}

// ListAwards retrieves all badges awarded to an employee, newest first
func (r *BadgeRepo) ListAwards(employeeID int64) ([]*models.BadgeAward, error) {
	rows, err := DB.Query(`
		SELECT a.badge_id, b.name, a.employee_id, a.awarded_by, a.awarded_at
		FROM badge_awards a
		JOIN badges b ON b.id = a.badge_id
		WHERE a.employee_id = ?
		ORDER BY a.awarded_at DESC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var awards []*models.BadgeAward
	for rows.Next() {
		a := &models.BadgeAward{}
		err := rows.Scan(&a.BadgeID, &a.BadgeName, &a.EmployeeID, &a.AwardedBy, &a.AwardedAt)
		if err != nil {
			return nil, err
		}
		awards = append(awards, a)
	}

	return awards, rows.Err()
}
