package models

import (
	"encoding/json"
	"fmt"
)

// InstanceStatus is the provider lifecycle state of an instance. Only
// running and stopped are interpreted; other provider states pass through
// untouched.
type InstanceStatus string

const (
	StatusRunning InstanceStatus = "running"
	StatusStopped InstanceStatus = "stopped"
)

// ShutdownReasonAuto is recorded on every instance stopped by the optimizer.
const ShutdownReasonAuto = "auto-optimization"

// Instance represents one compute instance from the inventory snapshot.
// Fields not known to this tool are preserved in Extra so a load/save
// round trip never drops provider data.
type Instance struct {
	InstanceID  string
	Name        string
	Type        string
	Status      InstanceStatus
	MonthlyCost float64
	CPUUsage    float64
	Owner       string
	Environment string

	// Set only after a simulated shutdown.
	PreviousMonthlyCost *float64
	ShutdownReason      string
	ShutdownTimestamp   string

	Extra map[string]json.RawMessage
}

// UnmarshalJSON decodes an instance record, requiring every inventory field
// and keeping unrecognized keys in Extra.
func (i *Instance) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	required := []struct {
		key string
		dst interface{}
	}{
		{"instance_id", &i.InstanceID},
		{"name", &i.Name},
		{"type", &i.Type},
		{"status", &i.Status},
		{"monthly_cost", &i.MonthlyCost},
		{"cpu_usage", &i.CPUUsage},
		{"owner", &i.Owner},
		{"environment", &i.Environment},
	}
	for _, f := range required {
		v, ok := raw[f.key]
		if !ok {
			return fmt.Errorf("missing required field %q", f.key)
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return fmt.Errorf("field %q: %w", f.key, err)
		}
		delete(raw, f.key)
	}

	optional := []struct {
		key string
		dst interface{}
	}{
		{"previous_monthly_cost", &i.PreviousMonthlyCost},
		{"shutdown_reason", &i.ShutdownReason},
		{"shutdown_timestamp", &i.ShutdownTimestamp},
	}
	for _, f := range optional {
		if v, ok := raw[f.key]; ok {
			if err := json.Unmarshal(v, f.dst); err != nil {
				return fmt.Errorf("field %q: %w", f.key, err)
			}
			delete(raw, f.key)
		}
	}

	if len(raw) > 0 {
		i.Extra = raw
	}
	return nil
}

// MarshalJSON encodes the instance, merging passthrough fields back in.
func (i Instance) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(i.Extra)+11)
	for k, v := range i.Extra {
		out[k] = v
	}

	var err error
	set := func(key string, v interface{}) {
		if err != nil {
			return
		}
		var data []byte
		if data, err = json.Marshal(v); err == nil {
			out[key] = data
		}
	}

	set("instance_id", i.InstanceID)
	set("name", i.Name)
	set("type", i.Type)
	set("status", i.Status)
	set("monthly_cost", i.MonthlyCost)
	set("cpu_usage", i.CPUUsage)
	set("owner", i.Owner)
	set("environment", i.Environment)
	if i.PreviousMonthlyCost != nil {
		set("previous_monthly_cost", *i.PreviousMonthlyCost)
	}
	if i.ShutdownReason != "" {
		set("shutdown_reason", i.ShutdownReason)
	}
	if i.ShutdownTimestamp != "" {
		set("shutdown_timestamp", i.ShutdownTimestamp)
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(out)
}

// InventoryDocument is the in-memory form of one inventory snapshot.
// Instance order matches the source file.
type InventoryDocument struct {
	MonthlyBudget float64
	Instances     []*Instance
}

// DuplicateInstanceIDs returns the instance IDs that appear more than once,
// in first-occurrence order. Shutdown matching assumes unique IDs, so
// callers should surface these rather than resolve them silently.
func (d *InventoryDocument) DuplicateInstanceIDs() []string {
	seen := make(map[string]int, len(d.Instances))
	var dups []string
	for _, inst := range d.Instances {
		seen[inst.InstanceID]++
		if seen[inst.InstanceID] == 2 {
			dups = append(dups, inst.InstanceID)
		}
	}
	return dups
}
