package domain

import (
	"github.com/yungbote/orggraph-backend/internal/domain/org"
)

type Person = org.Person
type PersonRelation = org.PersonRelation
type Project = org.Project
type ProjectLead = org.ProjectLead
type ProjectGroup = org.ProjectGroup
type Task = org.Task
type TaskAssignee = org.TaskAssignee
type Group = org.Group
type PersonGroup = org.PersonGroup
