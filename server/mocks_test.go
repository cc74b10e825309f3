package server

import (
	"github.com/YutoSekiguchi/Lyricium/config"
	"github.com/YutoSekiguchi/Lyricium/model"

	"github.com/gorilla/mux"
)

// --- repository mocks ---

type mockUserRepo struct {
	getAllUsersFn    func() ([]*model.User, error)
	getUserByEmailFn func(email string) (*model.User, error)
	getUserByIDFn    func(id int64) (*model.User, error)
	createUserFn     func(req *model.CreateUserRequest) (*model.User, error)
}

func (m *mockUserRepo) GetAllUsers() ([]*model.User, error) {
	if m.getAllUsersFn != nil {
		return m.getAllUsersFn()
	}
	return []*model.User{}, nil
}

func (m *mockUserRepo) GetUserByEmail(email string) (*model.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByID(id int64) (*model.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return nil, nil
}

func (m *mockUserRepo) CreateUser(req *model.CreateUserRequest) (*model.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(req)
	}
	return nil, nil
}

type mockSongRepo struct {
	getAllSongsFn            func() ([]*model.Song, error)
	getSongByIDFn            func(id int64) (*model.Song, error)
	getSongsByUserIDFn       func(userID int64) ([]*model.Song, error)
	getSongsByColorFn        func(color string) ([]*model.Song, error)
	getSongsByChemicalNameFn func(chemicalName string) ([]*model.Song, error)
	getSongsByStyleFn        func(style string) ([]*model.Song, error)
	getRandomSongFn          func() (*model.Song, error)
	getRecentSongsFn         func(limit int) ([]*model.Song, error)
	createSongFn             func(req *model.CreateSongRequest) (*model.Song, error)
}

func (m *mockSongRepo) GetAllSongs() ([]*model.Song, error) {
	if m.getAllSongsFn != nil {
		return m.getAllSongsFn()
	}
	return []*model.Song{}, nil
}

func (m *mockSongRepo) GetSongByID(id int64) (*model.Song, error) {
	if m.getSongByIDFn != nil {
		return m.getSongByIDFn(id)
	}
	return nil, nil
}

func (m *mockSongRepo) GetSongsByUserID(userID int64) ([]*model.Song, error) {
	if m.getSongsByUserIDFn != nil {
		return m.getSongsByUserIDFn(userID)
	}
	return []*model.Song{}, nil
}

func (m *mockSongRepo) GetSongsByColor(color string) ([]*model.Song, error) {
	if m.getSongsByColorFn != nil {
		return m.getSongsByColorFn(color)
	}
	return []*model.Song{}, nil
}

func (m *mockSongRepo) GetSongsByChemicalName(chemicalName string) ([]*model.Song, error) {
	if m.getSongsByChemicalNameFn != nil {
		return m.getSongsByChemicalNameFn(chemicalName)
	}
	return []*model.Song{}, nil
}

func (m *mockSongRepo) GetSongsByStyle(style string) ([]*model.Song, error) {
	if m.getSongsByStyleFn != nil {
		return m.getSongsByStyleFn(style)
	}
	return []*model.Song{}, nil
}

func (m *mockSongRepo) GetRandomSong() (*model.Song, error) {
	if m.getRandomSongFn != nil {
		return m.getRandomSongFn()
	}
	return nil, nil
}

func (m *mockSongRepo) GetRecentSongs(limit int) ([]*model.Song, error) {
	if m.getRecentSongsFn != nil {
		return m.getRecentSongsFn(limit)
	}
	return []*model.Song{}, nil
}

func (m *mockSongRepo) CreateSong(req *model.CreateSongRequest) (*model.Song, error) {
	if m.createSongFn != nil {
		return m.createSongFn(req)
	}
	return nil, nil
}

// newTestRouter wires the real route table around mock repositories.
func newTestRouter(userRepo *mockUserRepo, songRepo *mockSongRepo, uploadDir string) *mux.Router {
	cfg := &config.Config{
		FrontendURI: "http://frontend.example.com",
		UploadDir:   uploadDir,
	}
	return NewRouter(NewAPIHandler(userRepo, songRepo, cfg), cfg)
}
