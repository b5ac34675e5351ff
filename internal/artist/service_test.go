package artist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- Fakes ---

type fakeProfiles struct {
	byUID     map[string]*shared.Profile
	createErr error
	deleted   []string
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{byUID: make(map[string]*shared.Profile)}
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
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.byUID[p.ID] = p
	return p, nil
}

func (f *fakeProfiles) DeleteProfile(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	delete(f.byUID, uid)
	return nil
}

func (f *fakeProfiles) GetProfilesByRole(_ context.Context, role common.Role) ([]*shared.Profile, error) {
	var out []*shared.Profile
	for _, p := range f.byUID {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeIdentities struct {
	nextUID   string
	createErr error
	deleted   []string
}

func (f *fakeIdentities) CreateIdentity(_ context.Context, email, _ string) (*shared.Identity, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e := email
	return &shared.Identity{UID: f.nextUID, Email: &e, SignInProvider: "password"}, nil
}

func (f *fakeIdentities) DeleteIdentity(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeStorage struct {
	err error
}

func (f *fakeStorage) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "http://cdn/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, _ string) error { return nil }

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

func createRequest() AdminCreateArtistRequest {
	return AdminCreateArtistRequest{
		Name:     "New Artist",
		Email:    "artist@example.com",
		Password: "secret123",
	}
}

// --- Tests ---

func TestGetAll_ProjectsOnlyArtists(t *testing.T) {
	profiles := newFakeProfiles()
	img := "http://cdn/a.png"
	profiles.byUID["artist-1"] = &shared.Profile{ID: "artist-1", DisplayName: "One", Role: common.RoleArtist, ArtistImageURL: &img}
	profiles.byUID["user-1"] = &shared.Profile{ID: "user-1", DisplayName: "Listener", Role: common.RoleUser}
	svc := NewService(profiles, &fakeIdentities{}, &fakeStorage{}, zap.NewNop())

	artists, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "artist-1", artists[0].ID)
	assert.Equal(t, "One", artists[0].Name)
	assert.Equal(t, img, artists[0].ImageURL)
}

func TestGetByID_NonArtistProfileIsNotFound(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.byUID["user-1"] = &shared.Profile{ID: "user-1", DisplayName: "Listener", Role: common.RoleUser}
	svc := NewService(profiles, &fakeIdentities{}, &fakeStorage{}, zap.NewNop())

	_, err := svc.GetByID(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAdminCreate_Success(t *testing.T) {
	profiles := newFakeProfiles()
	identities := &fakeIdentities{nextUID: "new-artist-uid"}
	svc := NewService(profiles, identities, &fakeStorage{}, zap.NewNop())

	image := newTestFileHeader(t, "image", "press-photo.png", "png")
	artist, err := svc.AdminCreate(context.Background(), createRequest(), image)

	require.NoError(t, err)
	assert.Equal(t, "new-artist-uid", artist.ID)
	assert.Equal(t, "New Artist", artist.Name)
	assert.Contains(t, artist.ImageURL, "images/artists/new-artist-uid/")

	created := profiles.byUID["new-artist-uid"]
	require.NotNil(t, created)
	assert.Equal(t, common.RoleArtist, created.Role)
	assert.Empty(t, identities.deleted, "identity must survive a successful creation")
}

func TestAdminCreate_UploadFailure_DeletesIdentity(t *testing.T) {
	profiles := newFakeProfiles()
	identities := &fakeIdentities{nextUID: "new-artist-uid"}
	storage := &fakeStorage{err: errors.New("bucket unreachable")}
	svc := NewService(profiles, identities, storage, zap.NewNop())

	image := newTestFileHeader(t, "image", "press-photo.png", "png")
	_, err := svc.AdminCreate(context.Background(), createRequest(), image)

	require.Error(t, err)
	assert.Equal(t, []string{"new-artist-uid"}, identities.deleted)
	assert.Empty(t, profiles.byUID, "no profile may remain after a failed creation")
}

func TestAdminCreate_ProfileWriteFailure_DeletesIdentity(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.createErr = common.ErrConflict.WithDetails("duplicate")
	identities := &fakeIdentities{nextUID: "new-artist-uid"}
	svc := NewService(profiles, identities, &fakeStorage{}, zap.NewNop())

	image := newTestFileHeader(t, "image", "press-photo.png", "png")
	_, err := svc.AdminCreate(context.Background(), createRequest(), image)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, []string{"new-artist-uid"}, identities.deleted)
}

func TestAdminCreate_MissingImage(t *testing.T) {
	identities := &fakeIdentities{nextUID: "new-artist-uid"}
	svc := NewService(newFakeProfiles(), identities, &fakeStorage{}, zap.NewNop())

	_, err := svc.AdminCreate(context.Background(), createRequest(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
	assert.Empty(t, identities.deleted, "no identity is created when validation fails first")
}

func TestAdminDelete_RemovesProfileOnly(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.byUID["artist-1"] = &shared.Profile{ID: "artist-1", DisplayName: "One", Role: common.RoleArtist}
	identities := &fakeIdentities{}
	svc := NewService(profiles, identities, &fakeStorage{}, zap.NewNop())

	require.NoError(t, svc.AdminDelete(context.Background(), "artist-1"))
	assert.Equal(t, []string{"artist-1"}, profiles.deleted)
	assert.Empty(t, identities.deleted, "the identity is intentionally left in place")
}

func TestAdminDelete_MissingArtistIsNoop(t *testing.T) {
	svc := NewService(newFakeProfiles(), &fakeIdentities{}, &fakeStorage{}, zap.NewNop())

	assert.NoError(t, svc.AdminDelete(context.Background(), "ghost"))
}

func TestAdminDelete_NonArtistProfile(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.byUID["user-1"] = &shared.Profile{ID: "user-1", DisplayName: "Listener", Role: common.RoleUser}
	svc := NewService(profiles, &fakeIdentities{}, &fakeStorage{}, zap.NewNop())

	err := svc.AdminDelete(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, profiles.deleted)
}
