package services

import (
	"gorm.io/gorm"

	"github.com/gcharris/writers-factory-app-sub009/internal/database"
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
)

// GetBindings loads the current role binding table.
func GetBindings() (engine.BindingSet, error) {
	var rows []models.RoleBinding
	if err := database.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	set := make(engine.BindingSet, len(rows))
	for _, r := range rows {
		set[r.RoleID] = r.ModelID
	}
	return set, nil
}

// ListBindings returns the binding rows in fixed role order.
func ListBindings() ([]models.RoleBinding, error) {
	set, err := GetBindings()
	if err != nil {
		return nil, err
	}
	var rows []models.RoleBinding
	for _, role := range engine.AllRoles() {
		if id, ok := set[role]; ok {
			rows = append(rows, models.RoleBinding{RoleID: role, ModelID: id})
		}
	}
	return rows, nil
}

// ReplaceBindings atomically swaps the whole binding table for the given
// set. Validation runs against a fresh catalog snapshot before the
// transaction; a rejected set leaves the previous bindings untouched.
func ReplaceBindings(set engine.BindingSet) error {
	snapshot, err := Snapshot()
	if err != nil {
		return err
	}
	if err := set.Validate(snapshot); err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.RoleBinding{}).Error; err != nil {
			return err
		}
		for _, role := range engine.AllRoles() {
			modelID, ok := set[role]
			if !ok {
				continue
			}
			if err := tx.Create(&models.RoleBinding{RoleID: role, ModelID: modelID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ResolveRole resolves a role to its serving model using the live binding
// table and a fresh catalog snapshot.
func ResolveRole(role string, inputShare float64) (engine.ModelInfo, error) {
	bindings, err := GetBindings()
	if err != nil {
		return engine.ModelInfo{}, err
	}
	snapshot, err := Snapshot()
	if err != nil {
		return engine.ModelInfo{}, err
	}
	return engine.Resolve(role, bindings, snapshot, inputShare)
}
