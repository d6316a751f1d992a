// Package inventory loads and saves cloud inventory snapshots.
//
// The wire format is a JSON document with a single cloud_inventory object
// holding monthly_budget and an instances array. Unknown instance fields
// survive a load/save round trip untouched.
package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"costopt/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type loadEnvelope struct {
	CloudInventory *struct {
		MonthlyBudget *float64          `json:"monthly_budget"`
		Instances     []json.RawMessage `json:"instances"`
	} `json:"cloud_inventory"`
}

type saveEnvelope struct {
	CloudInventory saveInventory `json:"cloud_inventory"`
}

type saveInventory struct {
	MonthlyBudget float64            `json:"monthly_budget"`
	Instances     []*models.Instance `json:"instances"`
}

// Load reads the inventory snapshot at path. A leading UTF-8 byte-order
// marker is tolerated. Each instance record is validated individually so a
// bad record is reported with its index and field.
func Load(path string) (*models.InventoryDocument, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var env loadEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &FormatError{Path: path, Reason: "not valid JSON", Err: err}
	}
	if env.CloudInventory == nil {
		return nil, &FormatError{Path: path, Reason: `missing "cloud_inventory" key`}
	}
	if env.CloudInventory.MonthlyBudget == nil {
		return nil, &FormatError{Path: path, Reason: `missing "monthly_budget" key`}
	}
	if env.CloudInventory.Instances == nil {
		return nil, &FormatError{Path: path, Reason: `missing "instances" key`}
	}

	doc := &models.InventoryDocument{
		MonthlyBudget: *env.CloudInventory.MonthlyBudget,
		Instances:     make([]*models.Instance, 0, len(env.CloudInventory.Instances)),
	}
	for i, raw := range env.CloudInventory.Instances {
		inst := &models.Instance{}
		if err := json.Unmarshal(raw, inst); err != nil {
			return nil, &FormatError{
				Path:   path,
				Reason: fmt.Sprintf("instance %d", i),
				Err:    err,
			}
		}
		doc.Instances = append(doc.Instances, inst)
	}
	return doc, nil
}

// Save writes the document to path as indented JSON, creating or
// overwriting the file.
func Save(path string, doc *models.InventoryDocument) error {
	env := saveEnvelope{
		CloudInventory: saveInventory{
			MonthlyBudget: doc.MonthlyBudget,
			Instances:     doc.Instances,
		},
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal inventory: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
