package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-backend/internal/domains/team"
)

type fakeRepository struct {
	members []team.TeamMember
}

func (r *fakeRepository) Create(_ context.Context, m *team.TeamMember) (*team.TeamMember, error) {
	stored := *m
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.members = append(r.members, stored)
	return &stored, nil
}

func (r *fakeRepository) GetAll(_ context.Context) ([]team.TeamMember, error) {
	out := make([]team.TeamMember, len(r.members))
	copy(out, r.members)
	return out, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*team.TeamMember, error) {
	for i := range r.members {
		if r.members[i].ID == id {
			m := r.members[i]
			return &m, nil
		}
	}
	return nil, team.ErrMemberNotFound
}

func (r *fakeRepository) Update(_ context.Context, m *team.TeamMember) (*team.TeamMember, error) {
	for i := range r.members {
		if r.members[i].ID == m.ID {
			updated := *m
			updated.CreatedAt = r.members[i].CreatedAt
			updated.UpdatedAt = time.Now()
			r.members[i] = updated
			return &updated, nil
		}
	}
	return nil, team.ErrMemberNotFound
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.members {
		if r.members[i].ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return team.ErrMemberNotFound
}

type fakeEncoder struct {
	err error
}

func (e *fakeEncoder) EncodeDataURI(r io.Reader) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64,encoded(" + string(data) + ")", nil
}

func strPtr(s string) *string { return &s }

func newTestService() (team.Service, *fakeRepository) {
	repo := &fakeRepository{}
	return NewTeamService(repo, &fakeEncoder{}), repo
}

func TestCreateWithoutPortrait(t *testing.T) {
	svc, _ := newTestService()

	member, err := svc.Create(context.Background(), &team.CreateTeamMemberRequest{
		Name:     "Jordan Miles",
		Position: "Senior Consultant",
		Category: strPtr("strategy"),
	}, nil)
	require.NoError(t, err)

	assert.Empty(t, member.ImageBase64, "portrait is optional")
	assert.Equal(t, "strategy", *member.Category)
}

func TestCreateWithPortrait(t *testing.T) {
	svc, _ := newTestService()

	member, err := svc.Create(context.Background(), &team.CreateTeamMemberRequest{
		Name:     "Sam Reed",
		Position: "Partner",
	}, strings.NewReader("portrait-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,encoded(portrait-bytes)", member.ImageBase64)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), &team.CreateTeamMemberRequest{
		Name:     "Alex Kim",
		Position: "Analyst",
		Category: strPtr("astrology"),
	}, nil)
	require.Error(t, err)
	assert.Empty(t, repo.members)
}

func TestUpdatePartialMerge(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &team.CreateTeamMemberRequest{
		Name:      "Casey Lane",
		Position:  "Consultant",
		Expertise: strPtr("M&A"),
		Bio:       strPtr("Ten years in deal advisory."),
	}, strings.NewReader("portrait"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &team.UpdateTeamMemberRequest{
		Position: strPtr("Principal Consultant"),
	}, nil)
	require.NoError(t, err)

	// Only the supplied field changes.
	assert.Equal(t, "Principal Consultant", updated.Position)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Expertise, updated.Expertise)
	assert.Equal(t, created.Bio, updated.Bio)
	assert.Equal(t, created.ImageBase64, updated.ImageBase64)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdatePortraitTriState(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &team.CreateTeamMemberRequest{
		Name:     "Dana Fox",
		Position: "Director",
	}, strings.NewReader("old"))
	require.NoError(t, err)

	// No file, no flag: keep.
	kept, err := svc.Update(ctx, created.ID, &team.UpdateTeamMemberRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ImageBase64, kept.ImageBase64)

	// New file: replace.
	replaced, err := svc.Update(ctx, created.ID, &team.UpdateTeamMemberRequest{}, strings.NewReader("new"))
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,encoded(new)", replaced.ImageBase64)

	// Flag set: clear.
	cleared, err := svc.Update(ctx, created.ID, &team.UpdateTeamMemberRequest{RemoveImage: true}, nil)
	require.NoError(t, err)
	assert.Empty(t, cleared.ImageBase64)
}

func TestUpdateFileBeatsRemoveFlag(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &team.CreateTeamMemberRequest{
		Name:     "Robin Hale",
		Position: "Advisor",
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &team.UpdateTeamMemberRequest{RemoveImage: true}, strings.NewReader("fresh"))
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,encoded(fresh)", updated.ImageBase64)
}

func TestUpdateMissingMember(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), uuid.New(), &team.UpdateTeamMemberRequest{}, nil)
	assert.ErrorIs(t, err, team.ErrMemberNotFound)
}

func TestDeleteMissingMember(t *testing.T) {
	svc, _ := newTestService()

	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), team.ErrMemberNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.Nil), team.ErrMemberNotFound)
}
