package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultTimeframe is selected when a request does not name one
const DefaultTimeframe = domain.OneYear

// RequestFile is the on-disk shape of a calculation request
type RequestFile struct {
	Locale              string            `yaml:"locale"`
	Currency            string            `yaml:"currency"`
	InitialAmount       decimal.Decimal   `yaml:"initial_amount"`
	MonthlyContribution decimal.Decimal   `yaml:"monthly_contribution"`
	Timeframe           string            `yaml:"timeframe"`
	Growth              *ScenarioOverride `yaml:"growth"`
	Baseline            *ScenarioOverride `yaml:"baseline"`
}

// ScenarioOverride replaces parts of a default scenario. Unset fields keep the default.
type ScenarioOverride struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	APY         *decimal.Decimal `yaml:"apy"`
	Description string           `yaml:"description"`
}

// CalculationRequest is a fully resolved request ready for the compare engine
type CalculationRequest struct {
	Locale   string
	Input    domain.InvestmentInput
	Selected domain.Timeframe
	Growth   domain.RateScenario
	Baseline domain.RateScenario
}

// InputParser handles parsing of calculation request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and resolves a request from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*CalculationRequest, error) {
	file, err := ip.ReadRequestFile(filename)
	if err != nil {
		return nil, err
	}
	return ip.Build(file)
}

// ReadRequestFile reads a YAML request file without resolving defaults
func (ip *InputParser) ReadRequestFile(filename string) (*RequestFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseRequestFile(data)
}

// ParseRequestFile decodes YAML request data
func (ip *InputParser) ParseRequestFile(data []byte) (*RequestFile, error) {
	var file RequestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &file, nil
}

// Parse decodes YAML request data, fills defaults from the locale table and validates the result
func (ip *InputParser) Parse(data []byte) (*CalculationRequest, error) {
	file, err := ip.ParseRequestFile(data)
	if err != nil {
		return nil, err
	}
	return ip.Build(file)
}

// Build resolves and validates a request file
func (ip *InputParser) Build(file *RequestFile) (*CalculationRequest, error) {
	req, err := ip.Resolve(file)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return req, nil
}

// Resolve turns a request file into a request, applying locale defaults
func (ip *InputParser) Resolve(file *RequestFile) (*CalculationRequest, error) {
	locale := file.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	localeCfg := GetLocaleConfig(locale)

	selected := DefaultTimeframe
	if file.Timeframe != "" {
		tf, err := domain.ParseTimeframe(file.Timeframe)
		if err != nil {
			return nil, fmt.Errorf("timeframe: %w", err)
		}
		selected = tf
	}

	currency := file.Currency
	if currency == "" {
		currency = localeCfg.Currency
	}

	growth, baseline := ScenariosForLocale(locale)

	return &CalculationRequest{
		Locale: localeCfg.Locale,
		Input: domain.InvestmentInput{
			InitialAmount:       file.InitialAmount,
			MonthlyContribution: file.MonthlyContribution,
			Currency:            currency,
		},
		Selected: selected,
		Growth:   file.Growth.apply(growth),
		Baseline: file.Baseline.apply(baseline),
	}, nil
}

func (o *ScenarioOverride) apply(s domain.RateScenario) domain.RateScenario {
	if o == nil {
		return s
	}
	if o.ID != "" {
		s.ID = o.ID
	}
	if o.Name != "" {
		s.Name = o.Name
	}
	if o.APY != nil {
		s.APY = *o.APY
	}
	if o.Description != "" {
		s.Description = o.Description
	}
	return s
}

// ValidateRequest checks a resolved request
func (ip *InputParser) ValidateRequest(req *CalculationRequest) error {
	if req.Input.InitialAmount.IsNegative() {
		return fmt.Errorf("initial amount cannot be negative")
	}
	if req.Input.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if req.Input.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if !req.Selected.Valid() {
		return fmt.Errorf("selected timeframe: %w", domain.ErrUnknownTimeframe)
	}
	if err := validateScenario(req.Growth); err != nil {
		return fmt.Errorf("growth scenario: %w", err)
	}
	if err := validateScenario(req.Baseline); err != nil {
		return fmt.Errorf("baseline scenario: %w", err)
	}
	return nil
}

func validateScenario(s domain.RateScenario) error {
	if s.ID == "" {
		return fmt.Errorf("id is required")
	}
	if s.APY.IsNegative() {
		return fmt.Errorf("apy cannot be negative")
	}
	return nil
}
