package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"horaires/internal/model"
)

// ErrClientNotFound is returned when a client ID does not exist.
var ErrClientNotFound = sql.ErrNoRows

// CreateClient inserts a new client with an unconfigured schedule.
func (db *DB) CreateClient(ctx context.Context, name string) (*model.Client, error) {
	res, err := db.ExecContext(ctx,
		"INSERT INTO clients (name, created_at, updated_at) VALUES (?, ?, ?)",
		name, time.Now(), time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return db.GetClient(ctx, id)
}

// GetClient returns one client by ID.
func (db *DB) GetClient(ctx context.Context, id int64) (*model.Client, error) {
	var c model.Client
	err := db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM clients WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClients returns all clients ordered by name.
func (db *DB) ListClients(ctx context.Context) ([]model.Client, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM clients ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// GetOpeningHours loads a client's weekly schedule. A client that was
// never configured gets the all-unset default.
func (db *DB) GetOpeningHours(ctx context.Context, clientID int64) (model.WeekSchedule, error) {
	week := model.DefaultWeekSchedule()
	raw, err := db.document(ctx, clientID, "opening_hours")
	if err != nil || raw == "" {
		return week, err
	}
	if err := json.Unmarshal([]byte(raw), &week); err != nil {
		return model.DefaultWeekSchedule(), fmt.Errorf("decode opening_hours for client %d: %w", clientID, err)
	}
	return week, nil
}

// SaveOpeningHours stores a client's weekly schedule verbatim.
func (db *DB) SaveOpeningHours(ctx context.Context, clientID int64, week model.WeekSchedule) error {
	return db.saveDocument(ctx, clientID, "opening_hours", week)
}

// GetVacationPeriods loads a client's closure periods.
func (db *DB) GetVacationPeriods(ctx context.Context, clientID int64) ([]model.VacationPeriod, error) {
	raw, err := db.document(ctx, clientID, "vacation_periods")
	if err != nil || raw == "" {
		return nil, err
	}
	var periods []model.VacationPeriod
	if err := json.Unmarshal([]byte(raw), &periods); err != nil {
		return nil, fmt.Errorf("decode vacation_periods for client %d: %w", clientID, err)
	}
	return periods, nil
}

// SaveVacationPeriods stores a client's closure periods verbatim.
func (db *DB) SaveVacationPeriods(ctx context.Context, clientID int64, periods []model.VacationPeriod) error {
	return db.saveDocument(ctx, clientID, "vacation_periods", periods)
}

// GetMarketDays loads a client's market-day windows.
func (db *DB) GetMarketDays(ctx context.Context, clientID int64) (model.MarketDaySchedule, error) {
	raw, err := db.document(ctx, clientID, "market_days_schedule")
	if err != nil || raw == "" {
		return nil, err
	}
	var market model.MarketDaySchedule
	if err := json.Unmarshal([]byte(raw), &market); err != nil {
		return nil, fmt.Errorf("decode market_days_schedule for client %d: %w", clientID, err)
	}
	return market, nil
}

// SaveMarketDays stores a client's market-day windows verbatim.
func (db *DB) SaveMarketDays(ctx context.Context, clientID int64, market model.MarketDaySchedule) error {
	return db.saveDocument(ctx, clientID, "market_days_schedule", market)
}

// document reads one JSON column for a client. Column names are fixed by
// the callers above, never user input.
func (db *DB) document(ctx context.Context, clientID int64, column string) (string, error) {
	var raw sql.NullString
	query := fmt.Sprintf("SELECT %s FROM clients WHERE id = ?", column)
	err := db.QueryRowContext(ctx, query, clientID).Scan(&raw)
	if err != nil {
		return "", err
	}
	if !raw.Valid {
		return "", nil
	}
	return raw.String, nil
}

func (db *DB) saveDocument(ctx context.Context, clientID int64, column string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", column, err)
	}
	query := fmt.Sprintf("UPDATE clients SET %s = ?, updated_at = ? WHERE id = ?", column)
	res, err := db.ExecContext(ctx, query, string(data), time.Now(), clientID)
	if err != nil {
		return fmt.Errorf("save %s: %w", column, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save %s: %w", column, err)
	}
	if n == 0 {
		return ErrClientNotFound
	}
	return nil
}
