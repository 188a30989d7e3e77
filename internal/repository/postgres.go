package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/easy-travel/hotelbot/internal/domain"
)

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) AddUser(ctx context.Context, user domain.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, connection_date) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO NOTHING`,
		user.ID, user.Name, user.ConnectionDate)
	if err != nil {
		return fmt.Errorf("add user: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddRequest(ctx context.Context, req domain.SearchRequest) (int64, error) {
	p := req.Params
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO user_requests (
			user_id, date_request, search_type, city, area_id, area_name,
			latitude, longitude, amount_hotels, has_photo, amount_photos,
			check_in, check_out, price_min, price_max, center_min, center_max
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id`,
		req.UserID, req.DateRequest, string(p.Mode),
		nullIfEmpty(p.City), nullIfEmpty(p.AreaID), nullIfEmpty(p.AreaName),
		nullIfZero(p.Latitude), nullIfZero(p.Longitude),
		p.AmountHotels, p.HasPhoto, p.AmountPhotos,
		p.CheckIn, p.CheckOut,
		nullUnlessFiltered(p.Mode, p.PriceMin), nullUnlessFiltered(p.Mode, p.PriceMax),
		nullUnlessFiltered(p.Mode, p.CenterMin), nullUnlessFiltered(p.Mode, p.CenterMax),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add request: %w", err)
	}
	return id, nil
}

const requestColumns = `id, user_id, date_request, search_type,
	COALESCE(city, ''), COALESCE(area_id, ''), COALESCE(area_name, ''),
	COALESCE(latitude, 0), COALESCE(longitude, 0),
	amount_hotels, has_photo, amount_photos, check_in, check_out,
	COALESCE(price_min, 0), COALESCE(price_max, 0),
	COALESCE(center_min, 0), COALESCE(center_max, 0)`

func (s *PostgresStore) GetRequest(ctx context.Context, id int64) (*domain.SearchRequest, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM user_requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

func (s *PostgresStore) ListRequestsByUser(ctx context.Context, userID int64) ([]domain.SearchRequest, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+requestColumns+` FROM user_requests WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var out []domain.SearchRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteRequest(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM user_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddHotels(ctx context.Context, hotels []domain.Hotel) error {
	for _, h := range hotels {
		var photos any
		if len(h.Photos) > 0 {
			photos = h.Photos
		}
		_, err := s.pool.Exec(ctx,
			`INSERT INTO hotels (
				user_id, request_id, date_report, hotel_id, name, address,
				center, price, photos
			 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9)`,
			h.UserID, h.RequestID, h.DateReport, h.HotelID, h.Name, h.Address,
			h.Center, h.Price.String(), photos)
		if err != nil {
			return fmt.Errorf("add hotel %s: %w", h.HotelID, err)
		}
	}
	return nil
}

func (s *PostgresStore) ListHotelsByRequest(ctx context.Context, requestID int64) ([]domain.Hotel, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, request_id, date_report, hotel_id, name, address,
		        center, price::text, COALESCE(photos, '{}')
		 FROM hotels WHERE request_id = $1 ORDER BY id`, requestID)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		var price string
		if err := rows.Scan(&h.ID, &h.UserID, &h.RequestID, &h.DateReport,
			&h.HotelID, &h.Name, &h.Address, &h.Center, &price, &h.Photos); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		h.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parse hotel price: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteHotelsByRequest(ctx context.Context, requestID int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM hotels WHERE request_id = $1`, requestID)
	if err != nil {
		return fmt.Errorf("delete hotels: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddCallback(ctx context.Context, code, areaName string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO callbacks (callback_code, area_name, created_at) VALUES ($1, $2, $3)`,
		code, areaName, time.Now())
	if err != nil {
		return fmt.Errorf("add callback: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetCallbackArea(ctx context.Context, code string) (string, error) {
	var areaName string
	err := s.pool.QueryRow(ctx,
		`SELECT area_name FROM callbacks WHERE callback_code = $1`, code).Scan(&areaName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrCallbackNotFound
		}
		return "", fmt.Errorf("get callback: %w", err)
	}
	return areaName, nil
}

func (s *PostgresStore) DeleteExpiredCallbacks(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM callbacks WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired callbacks: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	err := s.pool.QueryRow(ctx,
		`SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM user_requests),
			(SELECT count(*) FROM hotels)`).Scan(&st.Users, &st.Requests, &st.Hotels)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

func scanRequest(row pgx.Row) (*domain.SearchRequest, error) {
	var req domain.SearchRequest
	var mode string
	err := row.Scan(&req.ID, &req.UserID, &req.DateRequest, &mode,
		&req.Params.City, &req.Params.AreaID, &req.Params.AreaName,
		&req.Params.Latitude, &req.Params.Longitude,
		&req.Params.AmountHotels, &req.Params.HasPhoto, &req.Params.AmountPhotos,
		&req.Params.CheckIn, &req.Params.CheckOut,
		&req.Params.PriceMin, &req.Params.PriceMax,
		&req.Params.CenterMin, &req.Params.CenterMax)
	if err != nil {
		return nil, err
	}
	req.Params.Mode = domain.SearchMode(mode)
	return &req, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

func nullUnlessFiltered(mode domain.SearchMode, v int) *int {
	if !mode.UsesPriceFilter() {
		return nil
	}
	return &v
}
