package song

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/genre"
	"music_catalog_backend/internal/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- Fakes ---

type fakeRepository struct {
	songs     map[uuid.UUID]*Song
	createErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{songs: make(map[uuid.UUID]*Song)}
}

func (f *fakeRepository) Create(_ context.Context, song *Song) error {
	if f.createErr != nil {
		return f.createErr
	}
	if song.ID == uuid.Nil {
		song.ID = uuid.New()
	}
	f.songs[song.ID] = song
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*Song, error) {
	s, ok := f.songs[id]
	if !ok {
		return nil, common.ErrNotFound.WithDetails("Song not found.")
	}
	return s, nil
}

func (f *fakeRepository) FindAll(_ context.Context) ([]Song, error) { return nil, nil }

func (f *fakeRepository) FindByArtistID(_ context.Context, _ string) ([]Song, error) {
	return nil, nil
}

func (f *fakeRepository) FindByGenreID(_ context.Context, _ uuid.UUID) ([]Song, error) {
	return nil, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.songs, id)
	return nil
}

func (f *fakeRepository) CountOrphanedByArtist(_ context.Context) (int64, error) { return 0, nil }
func (f *fakeRepository) CountOrphanedByGenre(_ context.Context) (int64, error)  { return 0, nil }

type fakeGenres struct{}

func (fakeGenres) GetAll(_ context.Context) ([]genre.Genre, error) { return nil, nil }
func (fakeGenres) GetByIDOrSlug(_ context.Context, _ string) (*genre.Genre, error) {
	return nil, common.ErrNotFound
}
func (fakeGenres) AdminCreate(_ context.Context, _ genre.AdminCreateGenreRequest, _ *multipart.FileHeader) (*genre.Genre, error) {
	return nil, nil
}
func (fakeGenres) AdminDelete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeProfiles struct {
	byUID map[string]*shared.Profile
}

func (f *fakeProfiles) GetProfileByUID(_ context.Context, uid string) (*shared.Profile, error) {
	p, ok := f.byUID[uid]
	if !ok {
		return nil, common.ErrNotFound.WithDetails("Profile not found for this identity.")
	}
	return p, nil
}

func (f *fakeProfiles) ResolveProfile(_ context.Context, uid string) *shared.Profile {
	return f.byUID[uid]
}

func (f *fakeProfiles) CreateProfile(_ context.Context, p *shared.Profile) (*shared.Profile, error) {
	return p, nil
}

func (f *fakeProfiles) DeleteProfile(_ context.Context, _ string) error { return nil }

func (f *fakeProfiles) GetProfilesByRole(_ context.Context, _ common.Role) ([]*shared.Profile, error) {
	return nil, nil
}

type fakeStorage struct {
	uploads []string
	err     error
}

func (f *fakeStorage) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, key)
	return "http://cdn/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, _ string) error { return nil }

type fakeEvents struct {
	plays []string
}

func (f *fakeEvents) TrackLogin(_, _ string) {}
func (f *fakeEvents) TrackSignUp(_ string)   {}
func (f *fakeEvents) TrackPlay(id, _ string) { f.plays = append(f.plays, id) }
func (f *fakeEvents) Wait()                  {}

func newTestFileHeader(t *testing.T, fieldname, filename, content string) *multipart.FileHeader {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldname, filename))
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	files := form.File[fieldname]
	require.NotEmpty(t, files)
	return files[0]
}

func newTestService(repo Repository, profiles shared.Service, storage *fakeStorage, events *fakeEvents) Service {
	return NewService(repo, fakeGenres{}, profiles, storage, events, zap.NewNop())
}

func adminProfile() *shared.Profile {
	return &shared.Profile{ID: "admin-1", DisplayName: "Admin", Role: common.RoleAdmin}
}

func artistProfile(id, name string) *shared.Profile {
	return &shared.Profile{ID: id, DisplayName: name, Role: common.RoleArtist}
}

func createInput(t *testing.T, artistID string) CreateSongInput {
	return CreateSongInput{
		Name:              "New Track",
		GenreID:           uuid.New(),
		RequestedArtistID: artistID,
		Image:             newTestFileHeader(t, "image", "cover.png", "png"),
		Audio:             newTestFileHeader(t, "audio", "track.mp3", "mp3"),
	}
}

// --- Tests ---

func TestCreate_ArtistCreatesForSelf(t *testing.T) {
	repo := newFakeRepository()
	storage := &fakeStorage{}
	svc := newTestService(repo, &fakeProfiles{}, storage, &fakeEvents{})

	caller := artistProfile("artist-1", "The Band")
	song, err := svc.Create(context.Background(), caller, createInput(t, ""))

	require.NoError(t, err)
	assert.Equal(t, "artist-1", song.ArtistID)
	assert.Equal(t, "The Band", song.ArtistName, "owner display name is denormalized onto the song")
	assert.Len(t, storage.uploads, 2, "image and audio are both uploaded")
	assert.Contains(t, song.ImageURL, "images/songs/")
	assert.Contains(t, song.AudioURL, "audio/songs/")
}

func TestCreate_ArtistCannotCreateForOthers(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeProfiles{}, &fakeStorage{}, &fakeEvents{})

	caller := artistProfile("artist-1", "The Band")
	_, err := svc.Create(context.Background(), caller, createInput(t, "artist-2"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestCreate_AdminMustNameArtist(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeProfiles{}, &fakeStorage{}, &fakeEvents{})

	_, err := svc.Create(context.Background(), adminProfile(), createInput(t, ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestCreate_AdminCreatesForArtist(t *testing.T) {
	repo := newFakeRepository()
	profiles := &fakeProfiles{byUID: map[string]*shared.Profile{
		"artist-1": artistProfile("artist-1", "The Band"),
	}}
	svc := newTestService(repo, profiles, &fakeStorage{}, &fakeEvents{})

	song, err := svc.Create(context.Background(), adminProfile(), createInput(t, "artist-1"))

	require.NoError(t, err)
	assert.Equal(t, "artist-1", song.ArtistID)
	assert.Equal(t, "The Band", song.ArtistName)
}

func TestCreate_AdminRejectsNonArtistOwner(t *testing.T) {
	profiles := &fakeProfiles{byUID: map[string]*shared.Profile{
		"user-1": {ID: "user-1", DisplayName: "Listener", Role: common.RoleUser},
	}}
	svc := newTestService(newFakeRepository(), profiles, &fakeStorage{}, &fakeEvents{})

	_, err := svc.Create(context.Background(), adminProfile(), createInput(t, "user-1"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestCreate_PlainUserForbidden(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeProfiles{}, &fakeStorage{}, &fakeEvents{})

	caller := &shared.Profile{ID: "user-1", DisplayName: "Listener", Role: common.RoleUser}
	_, err := svc.Create(context.Background(), caller, createInput(t, ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestDelete_OwnerAndAdminOnly(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeProfiles{}, &fakeStorage{}, &fakeEvents{})
	ctx := context.Background()

	owner := artistProfile("artist-1", "The Band")
	song, err := svc.Create(ctx, owner, createInput(t, ""))
	require.NoError(t, err)

	other := artistProfile("artist-2", "Rival")
	err = svc.Delete(ctx, other, song.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, adminProfile(), song.ID))
}

func TestDelete_MissingSong(t *testing.T) {
	svc := newTestService(newFakeRepository(), &fakeProfiles{}, &fakeStorage{}, &fakeEvents{})

	err := svc.Delete(context.Background(), adminProfile(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestTrackPlay_RecordsKnownSongAndDropsUnknown(t *testing.T) {
	repo := newFakeRepository()
	events := &fakeEvents{}
	svc := newTestService(repo, &fakeProfiles{}, &fakeStorage{}, events)
	ctx := context.Background()

	owner := artistProfile("artist-1", "The Band")
	song, err := svc.Create(ctx, owner, createInput(t, ""))
	require.NoError(t, err)

	svc.TrackPlay(ctx, song.ID)
	svc.TrackPlay(ctx, uuid.New()) // unknown: dropped silently

	assert.Equal(t, []string{song.ID.String()}, events.plays)
}
