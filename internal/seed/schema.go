package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixture []byte

// Dataset is the top-level YAML structure of a seed fixture.
type Dataset struct {
	User          UserRecord           `yaml:"user"`
	Clients       []ClientRecord       `yaml:"clients"`
	Equipment     []EquipmentRecord    `yaml:"equipment"`
	ServiceOrders []ServiceOrderRecord `yaml:"service_orders"`
}

type UserRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Phone  string `yaml:"phone"`
	Avatar string `yaml:"avatar"`
}

type ClientRecord struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
}

type EquipmentRecord struct {
	ID              string                `yaml:"id"`
	Name            string                `yaml:"name"`
	Type            string                `yaml:"type"`
	Serial          string                `yaml:"serial"`
	Model           string                `yaml:"model"`
	Status          string                `yaml:"status"`
	Location        string                `yaml:"location"`
	InstallDate     string                `yaml:"install_date"`
	LastMaintenance string                `yaml:"last_maintenance"`
	NextMaintenance string                `yaml:"next_maintenance"`
	Attachments     []AttachmentRecord    `yaml:"attachments,omitempty"`
	ServiceHistory  []ServiceRecordRecord `yaml:"service_history,omitempty"`
}

type AttachmentRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Size string `yaml:"size"`
	Date string `yaml:"date"`
	Type string `yaml:"type"`
}

type ServiceRecordRecord struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Technician   string `yaml:"technician"`
	Date         string `yaml:"date"`
	Observations string `yaml:"observations"`
}

// ServiceOrderRecord references its client and equipment by id.
type ServiceOrderRecord struct {
	ID          string          `yaml:"id"`
	OSNumber    string          `yaml:"os_number"`
	Client      string          `yaml:"client"`
	Status      string          `yaml:"status"`
	ServiceType string          `yaml:"service_type"`
	Date        string          `yaml:"date"`
	Time        string          `yaml:"time"`
	Description string          `yaml:"description"`
	Scheduled   string          `yaml:"scheduled"`
	Equipment   []string        `yaml:"equipment,omitempty"`
	History     []HistoryRecord `yaml:"history,omitempty"`
}

type HistoryRecord struct {
	ID     string `yaml:"id"`
	Action string `yaml:"action"`
	Date   string `yaml:"date"`
}

// Parse decodes and validates a fixture. Unknown keys are rejected and every
// validation problem is reported together.
func Parse(data []byte) (*Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parsing seed fixture: %w", err)
	}
	if errs := Validate(&ds); len(errs) > 0 {
		return nil, fmt.Errorf("validating seed fixture: %w", errors.Join(errs...))
	}
	return &ds, nil
}

// Default returns the fixture embedded in the binary.
func Default() (*Dataset, error) {
	return Parse(defaultFixture)
}

// LoadFile reads a fixture from path, or the embedded one when path is empty.
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}
