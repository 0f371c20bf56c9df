package service

import (
	"context"
	"time"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. They reproduce
// the repositories' contract: not-found sentinels on absent rows and
// "already exists" sentinels on duplicate unique keys.

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	clone.CreatedAt = time.Now().UTC()
	clone.UpdatedAt = clone.CreatedAt
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, upd ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.DepartmentID != nil {
		u.DepartmentID = *upd.DepartmentID
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	out := *u
	return &out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type stubAssetRepo struct {
	assets      map[int64]*domain.Asset
	nextID      int64
	createCalls int
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: make(map[int64]*domain.Asset)}
}

func (r *stubAssetRepo) Create(_ context.Context, asset *domain.Asset) (*domain.Asset, error) {
	r.createCalls++
	for _, a := range r.assets {
		if a.SerialNumber == asset.SerialNumber {
			return nil, domain.ErrSerialNumberExists
		}
	}
	r.nextID++
	clone := *asset
	clone.ID = r.nextID
	r.assets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, id int64) (*domain.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	out := *a
	return &out, nil
}

func (r *stubAssetRepo) FindBySerialNumber(_ context.Context, serial string) (*domain.Asset, error) {
	for _, a := range r.assets {
		if a.SerialNumber == serial {
			out := *a
			return &out, nil
		}
	}
	return nil, domain.ErrAssetNotFound
}

func (r *stubAssetRepo) List(_ context.Context) ([]domain.Asset, error) {
	out := make([]domain.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAssetRepo) Update(_ context.Context, id int64, upd ports.AssetUpdate) (*domain.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	if upd.Name != nil {
		a.Name = *upd.Name
	}
	if upd.Type != nil {
		a.Type = *upd.Type
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if upd.AssignedUserID != nil {
		a.AssignedUserID = upd.AssignedUserID
	}
	out := *a
	return &out, nil
}

func (r *stubAssetRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.assets[id]; !ok {
		return domain.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}

func (r *stubAssetRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.assets)), nil
}

func (r *stubAssetRepo) CountByStatus(_ context.Context, status domain.AssetStatus) (int64, error) {
	var n int64
	for _, a := range r.assets {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubAssetRepo) UnassignUser(_ context.Context, userID int64) error {
	for _, a := range r.assets {
		if a.AssignedUserID != nil && *a.AssignedUserID == userID {
			a.AssignedUserID = nil
		}
	}
	return nil
}

type stubDeptRepo struct {
	departments map[int64]*domain.Department
	nextID      int64
}

func newStubDeptRepo(names ...string) *stubDeptRepo {
	r := &stubDeptRepo{departments: make(map[int64]*domain.Department)}
	for _, name := range names {
		r.nextID++
		r.departments[r.nextID] = &domain.Department{ID: r.nextID, Name: name}
	}
	return r
}

func (r *stubDeptRepo) Create(_ context.Context, dept *domain.Department) (*domain.Department, error) {
	for _, d := range r.departments {
		if d.Name == dept.Name {
			return nil, domain.ErrDepartmentExists
		}
	}
	r.nextID++
	clone := *dept
	clone.ID = r.nextID
	r.departments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDeptRepo) FindByID(_ context.Context, id int64) (*domain.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, domain.ErrDepartmentNotFound
	}
	out := *d
	return &out, nil
}

func (r *stubDeptRepo) FindByName(_ context.Context, name string) (*domain.Department, error) {
	for _, d := range r.departments {
		if d.Name == name {
			out := *d
			return &out, nil
		}
	}
	return nil, domain.ErrDepartmentNotFound
}

func (r *stubDeptRepo) List(_ context.Context) ([]domain.Department, error) {
	out := make([]domain.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, *d)
	}
	return out, nil
}
