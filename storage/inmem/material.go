package inmemdb

import (
	"strings"

	"github.com/edustack/studyhub/core/material"
)

type materialRepository struct {
	t *table[material.Material]
}

func NewMaterialRepository(db *DB) material.Repository {
	return &materialRepository{t: db.materials}
}

func (repo *materialRepository) CreateMaterial(mat material.Material) (material.Material, error) {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	mat.ID = repo.t.nextID()
	repo.t.prepend(mat)
	return mat, nil
}

func (repo *materialRepository) QueryAllMaterials() ([]material.Material, error) {
	repo.t.mutex.RLock()
	defer repo.t.mutex.RUnlock()
	return repo.t.all(), nil
}

func (repo *materialRepository) GetMaterialByID(id string) (material.Material, error) {
	repo.t.mutex.RLock()
	defer repo.t.mutex.RUnlock()

	for _, mat := range repo.t.rows {
		if mat.ID == id {
			return mat, nil
		}
	}
	return material.Material{}, material.ErrNotFound
}

func (repo *materialRepository) FilterMaterials(filter material.Filter) ([]material.Material, error) {
	repo.t.mutex.RLock()
	defer repo.t.mutex.RUnlock()

	mats := make([]material.Material, 0, len(repo.t.rows))
	for _, mat := range repo.t.rows {
		if filter.Course != "" && !strings.EqualFold(mat.Course, filter.Course) {
			continue
		}
		if filter.Subject != "" && !strings.EqualFold(mat.Subject, filter.Subject) {
			continue
		}
		mats = append(mats, mat)
	}
	return mats, nil
}

func (repo *materialRepository) UpdateMaterial(id string, um material.UpdateMaterial) (material.Material, error) {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	for i, mat := range repo.t.rows {
		if mat.ID != id {
			continue
		}
		// only save set fields
		if um.Title != "" {
			mat.Title = um.Title
		}
		if um.Description != "" {
			mat.Description = um.Description
		}
		if um.Course != "" {
			mat.Course = um.Course
		}
		if um.Subject != "" {
			mat.Subject = um.Subject
		}
		if um.IsPublic != nil {
			mat.IsPublic = *um.IsPublic
		}
		repo.t.rows[i] = mat
		return mat, nil
	}
	return material.Material{}, material.ErrNotFound
}

func (repo *materialRepository) IncrementMaterialDownloads(id string) (material.Material, error) {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	for i, mat := range repo.t.rows {
		if mat.ID == id {
			mat.Downloads++
			repo.t.rows[i] = mat
			return mat, nil
		}
	}
	return material.Material{}, material.ErrNotFound
}

func (repo *materialRepository) DeleteMaterial(id string) error {
	repo.t.mutex.Lock()
	defer repo.t.mutex.Unlock()

	for i, mat := range repo.t.rows {
		if mat.ID == id {
			repo.t.rows = append(repo.t.rows[:i], repo.t.rows[i+1:]...)
			return nil
		}
	}
	// strict semantics: a second delete of the same id is an error
	return material.ErrNotFound
}
