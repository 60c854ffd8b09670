package service

import (
	"context"
	"fmt"

	"schedule-planner/internal/model"
	"schedule-planner/internal/repository"
)

// MasterService manages the classification entities (groups, projects,
// buckets) that tasks reference.
type MasterService struct {
	groups   *repository.GroupRepository
	projects *repository.ProjectRepository
	buckets  *repository.BucketRepository
}

func NewMasterService(groups *repository.GroupRepository, projects *repository.ProjectRepository, buckets *repository.BucketRepository) *MasterService {
	return &MasterService{groups: groups, projects: projects, buckets: buckets}
}

func (s *MasterService) CreateGroup(ctx context.Context, name string) (*model.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	group := model.Group{Name: name}
	if err := s.groups.Create(ctx, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *MasterService) RenameGroup(ctx context.Context, id, name string) (*model.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	group, err := s.groups.Get(ctx, id)
	if err != nil || group == nil {
		return nil, err
	}
	group.Name = name
	if err := s.groups.Save(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *MasterService) ListGroups(ctx context.Context) ([]model.Group, error) {
	return s.groups.List(ctx)
}

func (s *MasterService) DeleteGroup(ctx context.Context, id string) error {
	return s.groups.Delete(ctx, id)
}

func (s *MasterService) CreateProject(ctx context.Context, name string, groupID *string) (*model.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	project := model.Project{Name: name, GroupID: groupID}
	if err := s.projects.Create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *MasterService) UpdateProject(ctx context.Context, id, name string, groupID *string) (*model.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	project, err := s.projects.Get(ctx, id)
	if err != nil || project == nil {
		return nil, err
	}
	project.Name = name
	project.GroupID = groupID
	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *MasterService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *MasterService) DeleteProject(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *MasterService) CreateBucket(ctx context.Context, name string) (*model.Bucket, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	bucket := model.Bucket{Name: name}
	if err := s.buckets.Create(ctx, &bucket); err != nil {
		return nil, err
	}
	return &bucket, nil
}

func (s *MasterService) RenameBucket(ctx context.Context, id, name string) (*model.Bucket, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	bucket, err := s.buckets.Get(ctx, id)
	if err != nil || bucket == nil {
		return nil, err
	}
	bucket.Name = name
	if err := s.buckets.Save(ctx, bucket); err != nil {
		return nil, err
	}
	return bucket, nil
}

func (s *MasterService) ListBuckets(ctx context.Context) ([]model.Bucket, error) {
	return s.buckets.List(ctx)
}

func (s *MasterService) DeleteBucket(ctx context.Context, id string) error {
	return s.buckets.Delete(ctx, id)
}
