package rail

// Kind identifies one of the settlement rails known to the catalog.
// The set of kinds is closed: rails are defined at process start and
// never registered dynamically.
type Kind string

const (
	SwiftWire              Kind = "swift_wire"
	LocalRTP               Kind = "local_rtp"
	StablecoinPartner      Kind = "stablecoin_partner"
	OrchestratedBankBundle Kind = "orchestrated_bank_bundle"
)

// Definition holds the static cost and latency parameters of a rail.
// Percentages are on a 0-100 scale and divided by 100 when applied.
// Risk commentary and the crypto special-case are carried as data here
// rather than dispatched on the id elsewhere.
type Definition struct {
	Kind              Kind
	DisplayName       string
	BaseFeeAED        float64
	VariableFeePct    float64
	FxSpreadPct       float64
	SettlementMinutes int
	Crypto            bool
	RiskNotes         string
}

// Catalog is the immutable table of rail definitions. Build one with
// NewCatalog and share it freely; it is never mutated after construction.
type Catalog struct {
	defs []Definition
}

// NewCatalog returns the catalog of the four supported rails.
func NewCatalog() *Catalog {
	return &Catalog{defs: []Definition{
		{
			Kind:              SwiftWire,
			DisplayName:       "SWIFT Wire",
			BaseFeeAED:        150,
			VariableFeePct:    0.4,
			FxSpreadPct:       0.7,
			SettlementMinutes: 2160,
			RiskNotes:         "Established correspondent banking network; slow but predictable, with full traceability.",
		},
		{
			Kind:              LocalRTP,
			DisplayName:       "Local Real-Time Payments",
			BaseFeeAED:        12,
			VariableFeePct:    0.15,
			FxSpreadPct:       0.25,
			SettlementMinutes: 30,
			RiskNotes:         "Domestic real-time scheme; low operational risk within participating banks.",
		},
		{
			Kind:              StablecoinPartner,
			DisplayName:       "Partner Stablecoin Rail",
			BaseFeeAED:        2,
			VariableFeePct:    0.1,
			FxSpreadPct:       0.3,
			SettlementMinutes: 5,
			Crypto:            true,
			RiskNotes:         "Settlement depends on a partner stablecoin venue; counterparty and regulatory exposure apply.",
		},
		{
			Kind:              OrchestratedBankBundle,
			DisplayName:       "Orchestrated Bank Bundle",
			BaseFeeAED:        25,
			VariableFeePct:    0.2,
			FxSpreadPct:       0.35,
			SettlementMinutes: 15,
			RiskNotes:         "Multiple coordinated bank legs; failure of one leg delays the bundle.",
		},
	}}
}

// Get returns the definition for a kind.
func (c *Catalog) Get(k Kind) (Definition, bool) {
	for _, d := range c.defs {
		if d.Kind == k {
			return d, true
		}
	}
	return Definition{}, false
}

// All returns every definition in catalog order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Available returns the definitions eligible for quoting. When allowCrypto
// is false, crypto rails are excluded entirely, not down-ranked.
func (c *Catalog) Available(allowCrypto bool) []Definition {
	out := make([]Definition, 0, len(c.defs))
	for _, d := range c.defs {
		if d.Crypto && !allowCrypto {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Count returns the number of rails in the catalog.
func (c *Catalog) Count() int {
	return len(c.defs)
}
