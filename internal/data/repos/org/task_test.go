package org

import (
	"context"
	"testing"

	"github.com/yungbote/orggraph-backend/internal/data/repos/testutil"
	types "github.com/yungbote/orggraph-backend/internal/domain"
	"github.com/yungbote/orggraph-backend/internal/platform/dbctx"
)

func TestTaskRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	log := testutil.Logger(t)
	tasks := NewTaskRepo(db, log)
	assignees := NewTaskAssigneeRepo(db, log)

	p := testutil.SeedProject(t, ctx, tx, "Apollo", "Active")
	ada := testutil.SeedPerson(t, ctx, tx, "Ada", "")
	ben := testutil.SeedPerson(t, ctx, tx, "Ben", "")

	created, err := tasks.Create(dbc, []*types.Task{
		{Name: "Launch", ProjectID: testutil.PtrInt64(p.ID)},
		{Name: "Loose end"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	launch := created[0]

	if err := assignees.Upsert(dbc, []*types.TaskAssignee{
		{TaskID: launch.ID, PersonID: ben.ID, Role: "Consulted"},
		{TaskID: launch.ID, PersonID: ada.ID, Role: "Responsible"},
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	// A repeated pair is ignored and keeps the stored role.
	if err := assignees.Upsert(dbc, []*types.TaskAssignee{{TaskID: launch.ID, PersonID: ada.ID, Role: "Informed"}}); err != nil {
		t.Fatalf("Upsert (repeat): %v", err)
	}

	byProject, err := tasks.GetByProjectIDs(dbc, []int64{p.ID})
	if err != nil || len(byProject) != 1 || byProject[0].ID != launch.ID {
		t.Fatalf("GetByProjectIDs: err=%v rows=%+v", err, byProject)
	}

	all, err := tasks.ListWithAssignees(dbc)
	if err != nil {
		t.Fatalf("ListWithAssignees: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListWithAssignees: want=2 got=%d", len(all))
	}
	if len(all[0].Assignees) != 2 || all[0].Assignees[0].PersonID != ada.ID {
		t.Fatalf("ListWithAssignees: assignees=%+v", all[0].Assignees)
	}
	if all[0].Assignees[0].Role != "Responsible" {
		t.Fatalf("Upsert overwrote role: %q", all[0].Assignees[0].Role)
	}
	if len(all[1].Assignees) != 0 {
		t.Fatalf("unassigned task: assignees=%+v", all[1].Assignees)
	}

	byPerson, err := assignees.GetByPersonIDs(dbc, []int64{ben.ID})
	if err != nil || len(byPerson) != 1 || byPerson[0].Role != "Consulted" {
		t.Fatalf("GetByPersonIDs: err=%v rows=%+v", err, byPerson)
	}
	byTask, err := assignees.GetByTaskIDs(dbc, []int64{launch.ID})
	if err != nil || len(byTask) != 2 {
		t.Fatalf("GetByTaskIDs: err=%v len=%d", err, len(byTask))
	}
}
