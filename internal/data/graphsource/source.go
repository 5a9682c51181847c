// Package graphsource serves the graph builders from the relational store.
package graphsource

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	orgrepo "github.com/yungbote/orggraph-backend/internal/data/repos/org"
	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/graph"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

// Repos is the set of repositories a Source reads from.
type Repos struct {
	People        orgrepo.PersonRepo
	Relations     orgrepo.PersonRelationRepo
	Projects      orgrepo.ProjectRepo
	ProjectLeads  orgrepo.ProjectLeadRepo
	ProjectGroups orgrepo.ProjectGroupRepo
	Tasks         orgrepo.TaskRepo
	TaskAssignees orgrepo.TaskAssigneeRepo
	Groups        orgrepo.GroupRepo
	PersonGroups  orgrepo.PersonGroupRepo
}

func NewRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		People:        orgrepo.NewPersonRepo(db, log),
		Relations:     orgrepo.NewPersonRelationRepo(db, log),
		Projects:      orgrepo.NewProjectRepo(db, log),
		ProjectLeads:  orgrepo.NewProjectLeadRepo(db, log),
		ProjectGroups: orgrepo.NewProjectGroupRepo(db, log),
		Tasks:         orgrepo.NewTaskRepo(db, log),
		TaskAssignees: orgrepo.NewTaskAssigneeRepo(db, log),
		Groups:        orgrepo.NewGroupRepo(db, log),
		PersonGroups:  orgrepo.NewPersonGroupRepo(db, log),
	}
}

// Source implements graph.Store. Every failure comes back as a
// *graph.StoreError.
type Source struct {
	repos Repos
	tx    *gorm.DB
	log   *logger.Logger
}

var _ graph.Store = (*Source)(nil)

func New(repos Repos, baseLog *logger.Logger) *Source {
	return &Source{repos: repos, log: baseLog.With("component", "GraphSource")}
}

// WithTx returns a Source that reads inside tx.
func (s *Source) WithTx(tx *gorm.DB) *Source {
	cp := *s
	cp.tx = tx
	return &cp
}

func (s *Source) dbc(ctx context.Context) dbctx.Context {
	return dbctx.Context{Ctx: ctx, Tx: s.tx}
}

// read runs one repository call and classifies its failure.
func read[T any](s *Source, op string, rows []T, err error) ([]T, error) {
	if err == nil {
		return rows, nil
	}
	se := &graph.StoreError{Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Code = pgErr.Code
	}
	s.log.Warn("store read failed", "op", op, "code", se.Code, "error", err)
	return nil, se
}

func (s *Source) ListPeople(ctx context.Context) ([]*types.Person, error) {
	rows, err := s.repos.People.List(s.dbc(ctx))
	return read(s, "ListPeople", rows, err)
}

func (s *Source) ListProjects(ctx context.Context) ([]*types.Project, error) {
	rows, err := s.repos.Projects.List(s.dbc(ctx))
	return read(s, "ListProjects", rows, err)
}

func (s *Source) ListTasks(ctx context.Context) ([]*types.Task, error) {
	rows, err := s.repos.Tasks.ListWithAssignees(s.dbc(ctx))
	return read(s, "ListTasks", rows, err)
}

func (s *Source) ListGroups(ctx context.Context) ([]*types.Group, error) {
	rows, err := s.repos.Groups.List(s.dbc(ctx))
	return read(s, "ListGroups", rows, err)
}

func (s *Source) PeopleByIDs(ctx context.Context, ids []int64) ([]*types.Person, error) {
	rows, err := s.repos.People.GetByIDs(s.dbc(ctx), ids)
	return read(s, "PeopleByIDs", rows, err)
}

func (s *Source) ProjectsByIDs(ctx context.Context, ids []int64) ([]*types.Project, error) {
	rows, err := s.repos.Projects.GetByIDs(s.dbc(ctx), ids)
	return read(s, "ProjectsByIDs", rows, err)
}

func (s *Source) TasksByIDs(ctx context.Context, ids []int64) ([]*types.Task, error) {
	rows, err := s.repos.Tasks.GetByIDs(s.dbc(ctx), ids)
	return read(s, "TasksByIDs", rows, err)
}

func (s *Source) TasksByProjectIDs(ctx context.Context, projectIDs []int64) ([]*types.Task, error) {
	rows, err := s.repos.Tasks.GetByProjectIDs(s.dbc(ctx), projectIDs)
	return read(s, "TasksByProjectIDs", rows, err)
}

func (s *Source) GroupsByIDs(ctx context.Context, ids []int64) ([]*types.Group, error) {
	rows, err := s.repos.Groups.GetByIDs(s.dbc(ctx), ids)
	return read(s, "GroupsByIDs", rows, err)
}

func (s *Source) ListPersonRelations(ctx context.Context) ([]*types.PersonRelation, error) {
	rows, err := s.repos.Relations.List(s.dbc(ctx))
	return read(s, "ListPersonRelations", rows, err)
}

func (s *Source) ListProjectLeads(ctx context.Context) ([]*types.ProjectLead, error) {
	rows, err := s.repos.ProjectLeads.List(s.dbc(ctx))
	return read(s, "ListProjectLeads", rows, err)
}

func (s *Source) ListPersonGroups(ctx context.Context) ([]*types.PersonGroup, error) {
	rows, err := s.repos.PersonGroups.List(s.dbc(ctx))
	return read(s, "ListPersonGroups", rows, err)
}

func (s *Source) ListProjectGroups(ctx context.Context) ([]*types.ProjectGroup, error) {
	rows, err := s.repos.ProjectGroups.List(s.dbc(ctx))
	return read(s, "ListProjectGroups", rows, err)
}

func (s *Source) RelationsFromPeople(ctx context.Context, personIDs []int64) ([]*types.PersonRelation, error) {
	rows, err := s.repos.Relations.GetByFromPersonIDs(s.dbc(ctx), personIDs)
	return read(s, "RelationsFromPeople", rows, err)
}

func (s *Source) RelationsToPeople(ctx context.Context, personIDs []int64) ([]*types.PersonRelation, error) {
	rows, err := s.repos.Relations.GetByToPersonIDs(s.dbc(ctx), personIDs)
	return read(s, "RelationsToPeople", rows, err)
}

func (s *Source) ProjectLeadsByProjectIDs(ctx context.Context, projectIDs []int64) ([]*types.ProjectLead, error) {
	rows, err := s.repos.ProjectLeads.GetByProjectIDs(s.dbc(ctx), projectIDs)
	return read(s, "ProjectLeadsByProjectIDs", rows, err)
}

func (s *Source) ProjectLeadsByPersonIDs(ctx context.Context, personIDs []int64) ([]*types.ProjectLead, error) {
	rows, err := s.repos.ProjectLeads.GetByPersonIDs(s.dbc(ctx), personIDs)
	return read(s, "ProjectLeadsByPersonIDs", rows, err)
}

func (s *Source) TaskAssigneesByTaskIDs(ctx context.Context, taskIDs []int64) ([]*types.TaskAssignee, error) {
	rows, err := s.repos.TaskAssignees.GetByTaskIDs(s.dbc(ctx), taskIDs)
	return read(s, "TaskAssigneesByTaskIDs", rows, err)
}

func (s *Source) TaskAssigneesByPersonIDs(ctx context.Context, personIDs []int64) ([]*types.TaskAssignee, error) {
	rows, err := s.repos.TaskAssignees.GetByPersonIDs(s.dbc(ctx), personIDs)
	return read(s, "TaskAssigneesByPersonIDs", rows, err)
}

func (s *Source) PersonGroupsByPersonIDs(ctx context.Context, personIDs []int64) ([]*types.PersonGroup, error) {
	rows, err := s.repos.PersonGroups.GetByPersonIDs(s.dbc(ctx), personIDs)
	return read(s, "PersonGroupsByPersonIDs", rows, err)
}

func (s *Source) PersonGroupsByGroupIDs(ctx context.Context, groupIDs []int64) ([]*types.PersonGroup, error) {
	rows, err := s.repos.PersonGroups.GetByGroupIDs(s.dbc(ctx), groupIDs)
	return read(s, "PersonGroupsByGroupIDs", rows, err)
}

func (s *Source) ProjectGroupsByProjectIDs(ctx context.Context, projectIDs []int64) ([]*types.ProjectGroup, error) {
	rows, err := s.repos.ProjectGroups.GetByProjectIDs(s.dbc(ctx), projectIDs)
	return read(s, "ProjectGroupsByProjectIDs", rows, err)
}

func (s *Source) ProjectGroupsByGroupIDs(ctx context.Context, groupIDs []int64) ([]*types.ProjectGroup, error) {
	rows, err := s.repos.ProjectGroups.GetByGroupIDs(s.dbc(ctx), groupIDs)
	return read(s, "ProjectGroupsByGroupIDs", rows, err)
}
