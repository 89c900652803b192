package repository

import (
	"database/sql"

	"github.com/dresiko/media-match-homework/internal/contacts"
	"github.com/dresiko/media-match-homework/internal/model"
)

// ContactRepository reads the reporter_contact table. Rows are keyed by the
// normalized display name (contacts.NormalizeName) written at seed time.
type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Resolve(name string) (*model.ContactInfo, error) {
	var info model.ContactInfo
	err := r.db.QueryRow(`
		SELECT name, email, linkedin, twitter
		FROM reporter_contact
		WHERE contact_key = $1
	`, contacts.NormalizeName(name)).Scan(&info.Name, &info.Email, &info.LinkedIn, &info.Twitter)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &info, nil
}

func (r *ContactRepository) Search(query string) ([]model.ContactInfo, error) {
	normalized := contacts.NormalizeName(query)
	if normalized == "" {
		return nil, nil
	}

	rows, err := r.db.Query(`
		SELECT name, email, linkedin, twitter
		FROM reporter_contact
		WHERE contact_key LIKE '%' || $1 || '%'
		ORDER BY name
	`, normalized)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *ContactRepository) All() ([]model.ContactInfo, error) {
	rows, err := r.db.Query(`
		SELECT name, email, linkedin, twitter
		FROM reporter_contact
		ORDER BY name
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContacts(rows)
}

func scanContacts(rows *sql.Rows) ([]model.ContactInfo, error) {
	var results []model.ContactInfo
	for rows.Next() {
		var info model.ContactInfo
		if err := rows.Scan(&info.Name, &info.Email, &info.LinkedIn, &info.Twitter); err != nil {
			return nil, err
		}
		results = append(results, info)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
