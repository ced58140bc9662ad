package organization

import (
	"context"
	"fmt"
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/department"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/faculty"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/university"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []sse.Event
}

func (p *recordingPublisher) Publish(event sse.Event) {
	p.events = append(p.events, event)
}

type memUniversityRepo struct {
	rows      map[string]university.University
	seq       int
	deleteErr error
}

func newMemUniversityRepo() *memUniversityRepo {
	return &memUniversityRepo{rows: make(map[string]university.University)}
}

func (m *memUniversityRepo) Create(ctx context.Context, u university.University) (university.University, error) {
	m.seq++
	u.ID = fmt.Sprintf("uni-%d", m.seq)
	m.rows[u.ID] = u
	return u, nil
}

func (m *memUniversityRepo) GetByID(ctx context.Context, id string) (university.University, error) {
	u, ok := m.rows[id]
	if !ok {
		return university.University{}, university.ErrUniversityNotFound
	}
	return u, nil
}

func (m *memUniversityRepo) List(ctx context.Context, filter university.UniversityFilter) ([]university.University, int64, error) {
	var out []university.University
	for i := 1; i <= m.seq; i++ {
		if u, ok := m.rows[fmt.Sprintf("uni-%d", i)]; ok {
			out = append(out, u)
		}
	}
	total := int64(len(out))
	if filter.Paginated() {
		start := filter.Offset()
		if start > len(out) {
			start = len(out)
		}
		end := start + filter.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (m *memUniversityRepo) Update(ctx context.Context, req university.UpdateUniversityRequest) error {
	u, ok := m.rows[req.ID]
	if !ok {
		return university.ErrUniversityNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Location != nil {
		u.Location = shared.NilIfEmpty(req.Location)
	}
	m.rows[req.ID] = u
	return nil
}

func (m *memUniversityRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.rows[id]; !ok {
		return university.ErrUniversityNotFound
	}
	delete(m.rows, id)
	return nil
}

type stubFacultyRepo struct {
	faculty.FacultyRepository
	createErr error
}

func (s *stubFacultyRepo) Create(ctx context.Context, f faculty.Faculty) (faculty.Faculty, error) {
	return faculty.Faculty{}, s.createErr
}

type stubDepartmentRepo struct {
	department.DepartmentRepository
}

func newTestService() (OrganizationService, *memUniversityRepo, *stubFacultyRepo, *recordingPublisher) {
	unis := newMemUniversityRepo()
	facs := &stubFacultyRepo{}
	pub := &recordingPublisher{}
	return NewOrganizationService(unis, facs, &stubDepartmentRepo{}, pub), unis, facs, pub
}

func strPtr(s string) *string { return &s }

func TestCreateUniversity_RequiredFieldsOnly(t *testing.T) {
	svc, _, _, pub := newTestService()

	resp, err := svc.CreateUniversity(context.Background(), university.CreateUniversityRequest{Name: "GIU"})
	require.NoError(t, err)
	assert.Equal(t, "GIU", resp.Name)
	assert.Nil(t, resp.Location)
	assert.Equal(t, []sse.Event{{Table: "universities", Action: sse.ActionCreated, ID: resp.ID}}, pub.events)
}

func TestCreateUniversity_ValidationFails(t *testing.T) {
	svc, unis, _, pub := newTestService()

	_, err := svc.CreateUniversity(context.Background(), university.CreateUniversityRequest{
		Name:         " ",
		ContactEmail: strPtr("nope"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "name")
	assert.Contains(t, verrs.ToMap(), "contact_email")
	assert.Empty(t, unis.rows)
	assert.Empty(t, pub.events)
}

func TestDeleteUniversity_AbsentFromNextList(t *testing.T) {
	svc, _, _, pub := newTestService()
	ctx := context.Background()

	a, err := svc.CreateUniversity(ctx, university.CreateUniversityRequest{Name: "A"})
	require.NoError(t, err)
	_, err = svc.CreateUniversity(ctx, university.CreateUniversityRequest{Name: "B"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUniversity(ctx, a.ID))

	list, page, err := svc.ListUniversities(ctx, university.UniversityFilter{})
	require.NoError(t, err)
	assert.Nil(t, page)
	require.Len(t, list, 1)
	assert.NotEqual(t, a.ID, list[0].ID)
	assert.Equal(t, sse.ActionDeleted, pub.events[len(pub.events)-1].Action)
}

func TestDeleteUniversity_StillReferenced(t *testing.T) {
	svc, unis, _, pub := newTestService()
	unis.deleteErr = fmt.Errorf("failed to delete university: %w", &pgconn.PgError{Code: "23503"})

	err := svc.DeleteUniversity(context.Background(), "uni-1")
	assert.ErrorIs(t, err, university.ErrUniversityInUse)
	assert.Empty(t, pub.events)
}

func TestDeleteUniversity_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()
	err := svc.DeleteUniversity(context.Background(), "missing")
	assert.ErrorIs(t, err, university.ErrUniversityNotFound)
}

func TestUpdateUniversity_ClearsOptionalField(t *testing.T) {
	svc, _, _, pub := newTestService()
	ctx := context.Background()

	created, err := svc.CreateUniversity(ctx, university.CreateUniversityRequest{Name: "GIU", Location: strPtr("Cairo")})
	require.NoError(t, err)

	updated, err := svc.UpdateUniversity(ctx, university.UpdateUniversityRequest{ID: created.ID, Location: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Location)
	assert.Equal(t, "GIU", updated.Name)
	assert.Len(t, pub.events, 2)
}

func TestListUniversities_Paginated(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()
	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.CreateUniversity(ctx, university.CreateUniversityRequest{Name: name})
		require.NoError(t, err)
	}

	list, page, err := svc.ListUniversities(ctx, university.UniversityFilter{ListParams: shared.ListParams{Page: 2, Limit: 2}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "C", list[0].Name)
	require.NotNil(t, page)
	assert.Equal(t, int64(3), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
}

func TestCreateFaculty_UnknownUniversity(t *testing.T) {
	svc, _, facs, pub := newTestService()
	facs.createErr = fmt.Errorf("failed to create faculty: %w", &pgconn.PgError{Code: "23503"})

	_, err := svc.CreateFaculty(context.Background(), faculty.CreateFacultyRequest{Name: "Engineering", UniversityID: strPtr("ghost")})
	assert.ErrorIs(t, err, faculty.ErrUniversityNotFound)
	assert.Empty(t, pub.events)
}
