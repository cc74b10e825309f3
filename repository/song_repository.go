package repository

import (
	"database/sql"
	"fmt"

	"github.com/YutoSekiguchi/Lyricium/model"
)

// SongRepository defines the interface for song data operations.
type SongRepository interface {
	GetAllSongs() ([]*model.Song, error)
	GetSongByID(id int64) (*model.Song, error)
	GetSongsByUserID(userID int64) ([]*model.Song, error)
	GetSongsByColor(color string) ([]*model.Song, error)
	GetSongsByChemicalName(chemicalName string) ([]*model.Song, error)
	GetSongsByStyle(style string) ([]*model.Song, error)
	GetRandomSong() (*model.Song, error)
	GetRecentSongs(limit int) ([]*model.Song, error)
	CreateSong(req *model.CreateSongRequest) (*model.Song, error)
}

// mysqlSongRepository implements SongRepository for MySQL.
type mysqlSongRepository struct {
	db *sql.DB
}

// NewMySQLSongRepository creates a new mysqlSongRepository.
func NewMySQLSongRepository(db *sql.DB) SongRepository {
	return &mysqlSongRepository{db: db}
}

const songColumns = "id, user_id, title, type, color, symbol, chemical_name, style, lyrics, url, image, created_at"

func scanSong(row interface{ Scan(...interface{}) error }) (*model.Song, error) {
	song := &model.Song{}
	err := row.Scan(&song.ID, &song.UserID, &song.Title, &song.Type, &song.Color, &song.Symbol,
		&song.ChemicalName, &song.Style, &song.Lyrics, &song.URL, &song.Image, &song.CreatedAt)
	if err != nil {
		return nil, err
	}
	return song, nil
}

func (r *mysqlSongRepository) querySongs(query string, args ...interface{}) ([]*model.Song, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	songs := make([]*model.Song, 0)
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan song row: %w", err)
		}
		songs = append(songs, song)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return songs, nil
}

// GetAllSongs retrieves all songs, order unspecified.
func (r *mysqlSongRepository) GetAllSongs() ([]*model.Song, error) {
	return r.querySongs("SELECT " + songColumns + " FROM songs")
}

// GetSongByID retrieves a song by its ID.
func (r *mysqlSongRepository) GetSongByID(id int64) (*model.Song, error) {
	row := r.db.QueryRow("SELECT "+songColumns+" FROM songs WHERE id = ?", id)
	song, err := scanSong(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Song not found
		}
		return nil, fmt.Errorf("failed to scan song by ID %d: %w", id, err)
	}
	return song, nil
}

// GetSongsByUserID retrieves all songs of a user, in random order.
func (r *mysqlSongRepository) GetSongsByUserID(userID int64) ([]*model.Song, error) {
	songs, err := r.querySongs("SELECT "+songColumns+" FROM songs WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	shuffleSongs(songs)
	return songs, nil
}

// GetSongsByColor retrieves all songs with a given color, in random order.
func (r *mysqlSongRepository) GetSongsByColor(color string) ([]*model.Song, error) {
	songs, err := r.querySongs("SELECT "+songColumns+" FROM songs WHERE color = ?", color)
	if err != nil {
		return nil, err
	}
	shuffleSongs(songs)
	return songs, nil
}

// GetSongsByChemicalName retrieves all songs with a given chemical name, in random order.
func (r *mysqlSongRepository) GetSongsByChemicalName(chemicalName string) ([]*model.Song, error) {
	songs, err := r.querySongs("SELECT "+songColumns+" FROM songs WHERE chemical_name = ?", chemicalName)
	if err != nil {
		return nil, err
	}
	shuffleSongs(songs)
	return songs, nil
}

// GetSongsByStyle retrieves all songs with a given style, in random order.
func (r *mysqlSongRepository) GetSongsByStyle(style string) ([]*model.Song, error) {
	songs, err := r.querySongs("SELECT "+songColumns+" FROM songs WHERE style = ?", style)
	if err != nil {
		return nil, err
	}
	shuffleSongs(songs)
	return songs, nil
}

// GetRandomSong returns one uniformly random song, or nil if the table is
// empty. The pick is reservoir-sampled while scanning, so it does not depend
// on the storage engine's random ordering.
func (r *mysqlSongRepository) GetRandomSong() (*model.Song, error) {
	rows, err := r.db.Query("SELECT " + songColumns + " FROM songs")
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	var res reservoir
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan song row: %w", err)
		}
		res.observe(song)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return res.pick(), nil
}

// GetRecentSongs returns up to limit songs, most recently created first.
// Ties in created_at break on id so the order is stable per call.
func (r *mysqlSongRepository) GetRecentSongs(limit int) ([]*model.Song, error) {
	return r.querySongs("SELECT "+songColumns+" FROM songs ORDER BY created_at DESC, id DESC LIMIT ?", limit)
}

// CreateSong inserts a new song. The caller is responsible for having
// validated that req.UserID references an existing user.
func (r *mysqlSongRepository) CreateSong(req *model.CreateSongRequest) (*model.Song, error) {
	stmt, err := r.db.Prepare(`INSERT INTO songs (user_id, title, type, color, symbol, chemical_name, style, lyrics, url, image, created_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare create song statement: %w", err)
	}
	defer stmt.Close()

	createdAt := model.NowJST()
	res, err := stmt.Exec(req.UserID, req.Title, req.Type, req.Color, req.Symbol,
		req.ChemicalName, req.Style, req.Lyrics, req.URL, req.Image, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute create song statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID for song: %w", err)
	}

	return &model.Song{
		ID:           id,
		UserID:       req.UserID,
		Title:        req.Title,
		Type:         req.Type,
		Color:        req.Color,
		Symbol:       req.Symbol,
		ChemicalName: req.ChemicalName,
		Style:        req.Style,
		Lyrics:       req.Lyrics,
		URL:          req.URL,
		Image:        req.Image,
		CreatedAt:    createdAt,
	}, nil
}
