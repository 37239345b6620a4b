package sample

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/fednow/participant"
)

// Party is one side of the generated payments.
type Party struct {
	Name    string `yaml:"name" json:"name" toml:"name"`
	Routing string `yaml:"routing" json:"routing" toml:"routing"`
	Account string `yaml:"account" json:"account" toml:"account"`
	Country string `yaml:"country,omitempty" json:"country,omitempty" toml:"country"`
}

// Config drives the generator. Transactions is the number of transactions
// per message; Service is the routing number FedNow envelopes are addressed
// to. Zero fields take the values of Defaults.
type Config struct {
	Debtor       Party  `yaml:"debtor" json:"debtor" toml:"debtor"`
	Creditor     Party  `yaml:"creditor" json:"creditor" toml:"creditor"`
	Amount       string `yaml:"amount" json:"amount" toml:"amount"`
	Currency     string `yaml:"currency" json:"currency" toml:"currency"`
	Transactions int    `yaml:"transactions" json:"transactions" toml:"transactions"`
	Service      string `yaml:"service" json:"service" toml:"service"`
}

// Defaults returns a FedNow-compliant single USD transfer.
func Defaults() Config {
	return Config{
		Debtor:       Party{Name: "Jane Doe", Routing: "021000021", Account: "1234567890", Country: "US"},
		Creditor:     Party{Name: "John Roe", Routing: "011000015", Account: "9876543210", Country: "US"},
		Amount:       "100.00",
		Currency:     "USD",
		Transactions: 1,
		Service:      "021150706",
	}
}

// Merge fills the zero fields of c from d.
func (c Config) Merge(d Config) Config {
	c.Debtor = c.Debtor.merge(d.Debtor)
	c.Creditor = c.Creditor.merge(d.Creditor)
	if c.Amount == "" {
		c.Amount = d.Amount
	}
	if c.Currency == "" {
		c.Currency = d.Currency
	}
	if c.Transactions == 0 {
		c.Transactions = d.Transactions
	}
	if c.Service == "" {
		c.Service = d.Service
	}
	return c
}

func (pt Party) merge(d Party) Party {
	if pt.Name == "" {
		pt.Name = d.Name
	}
	if pt.Routing == "" {
		pt.Routing = d.Routing
	}
	if pt.Account == "" {
		pt.Account = d.Account
	}
	if pt.Country == "" {
		pt.Country = d.Country
	}
	return pt
}

// Check reports the first invalid setting as Issues with config paths such
// as /debtor/routing.
func (c Config) Check() error {
	p := iso.Root()
	checks := []func() error{
		func() error { return c.Debtor.check(p.Field("debtor")) },
		func() error { return c.Creditor.check(p.Field("creditor")) },
		func() error {
			d, err := iso.ParseDecimal(c.Amount)
			if err != nil {
				return iso.Issues{iso.IssueAt(p.Field("amount"), iso.CodeInvalidType, err.Error(), nil)}
			}
			amt := common.ActiveCurrencyAndAmount{Ccy: common.ActiveCurrencyCode(c.Currency), Value: d}
			return amt.Validate(p.Field("amount"))
		},
		func() error {
			if c.Transactions < 1 {
				return iso.Violation(p.Field("transactions"), iso.CodeTooSmall, "", map[string]any{"min": 1, "got": c.Transactions})
			}
			return nil
		},
		func() error { return participant.RoutingNumberFRS1(c.Service).Validate(p.Field("service")) },
	}
	return iso.All(checks...)
}

func (pt Party) check(p iso.PathRef) error {
	return iso.All(
		func() error { return common.Max140Text(pt.Name).Validate(p.Field("name")) },
		func() error { return participant.RoutingNumberFRS1(pt.Routing).Validate(p.Field("routing")) },
		func() error { return common.Max34Text(pt.Account).Validate(p.Field("account")) },
		func() error {
			if pt.Country == "" {
				return nil
			}
			return common.CountryCode(pt.Country).Validate(p.Field("country"))
		},
	)
}

// ParseConfig reads a YAML or JSON config and applies Defaults.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	var err error
	if iso.SniffFormat(data) == iso.FormatJSON {
		err = iso.CurrentJSONDriver().Unmarshal(data, &c)
	} else {
		err = yaml.Unmarshal(data, &c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("sample config: %w", err)
	}
	c = c.Merge(Defaults())
	if err := c.Check(); err != nil {
		return Config{}, fmt.Errorf("sample config: %w", err)
	}
	return c, nil
}

// LoadConfig reads the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sample config: %w", err)
	}
	return ParseConfig(data)
}
