package material

import (
	"errors"
	"time"

	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/session"
)

var (
	// errors
	ErrNotFound = errors.New("material not found")
)

type (
	Repository interface {
		// CreateMaterial assigns a collection-unique id and prepends the
		// record: default listing order is newest-first.
		CreateMaterial(mat Material) (Material, error)
		QueryAllMaterials() ([]Material, error)
		GetMaterialByID(id string) (Material, error)
		// FilterMaterials applies AND operation on available Filter fields.
		FilterMaterials(filter Filter) ([]Material, error)
		// UpdateMaterial applies the patch atomically and returns the result.
		UpdateMaterial(id string, um UpdateMaterial) (Material, error)
		IncrementMaterialDownloads(id string) (Material, error)
		// DeleteMaterial is NOT idempotent: deleting an absent id is ErrNotFound.
		DeleteMaterial(id string) error
	}

	Service struct {
		repo     Repository
		notifier core.Notifier
		log      core.Logger
	}
)

func NewService(repo Repository, notifier core.Notifier, log core.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, log: log}
}

// Upload records a new material attributed to the acting user.
func (svc *Service) Upload(nm NewMaterial, actingUser session.User) (Material, error) {
	core.SimulateMutationDelay()

	if actingUser.IsZero() {
		svc.notifier.Notify(core.NotifyError, "Error", "You must be logged in to upload materials")
		return Material{}, core.ErrNoActingUser
	}
	if err := nm.Validate(); err != nil {
		svc.notifier.Notify(core.NotifyError, "Upload failed", err.Error())
		return Material{}, err
	}

	mat := Material{
		Title:       nm.Title,
		Description: nm.Description,
		Type:        fileType(nm.FileName),
		FileSize:    nm.FileSize,
		UploadedBy:  attribution(actingUser),
		Course:      nm.Course,
		Subject:     nm.Subject,
		UploadedAt:  time.Now().UTC(),
		IsPublic:    nm.IsPublic,
	}
	mat, err := svc.repo.CreateMaterial(mat)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Upload failed", "Failed to upload material")
		return Material{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Material uploaded successfully")
	return mat, nil
}

// Query returns materials matching the filter, newest first. An empty match
// is an empty slice, never an error.
func (svc *Service) Query(filter Filter) ([]Material, error) {
	core.SimulateQueryDelay()

	mats, err := svc.repo.FilterMaterials(filter)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to fetch materials")
		return nil, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Materials loaded")
	return mats, nil
}

func (svc *Service) GetByID(id string) (Material, error) {
	core.SimulateQueryDelay()

	mat, err := svc.repo.GetMaterialByID(id)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to fetch material")
		return Material{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Material loaded")
	return mat, nil
}

// Update patches an existing material's metadata.
func (svc *Service) Update(id string, um UpdateMaterial) (Material, error) {
	core.SimulateMutationDelay()

	mat, err := svc.repo.UpdateMaterial(id, um)
	if err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to update material")
		return Material{}, err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Material updated successfully")
	return mat, nil
}

// Download bumps the download counter. Advisory: the user has no corrective
// action on failure, so the outcome is reported but not returned.
func (svc *Service) Download(id string) {
	core.SimulateMutationDelay()

	if _, err := svc.repo.IncrementMaterialDownloads(id); err != nil {
		svc.log.Warn("material: download count not recorded", err)
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to download material")
		return
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Download started")
}

func (svc *Service) Delete(id string) error {
	core.SimulateMutationDelay()

	if err := svc.repo.DeleteMaterial(id); err != nil {
		svc.notifier.Notify(core.NotifyError, "Error", "Failed to delete material")
		return err
	}
	svc.notifier.Notify(core.NotifySuccess, "Success", "Material deleted successfully")
	return nil
}

func attribution(usr session.User) string {
	if usr.Name != "" {
		return usr.Name
	}
	return "Student"
}
