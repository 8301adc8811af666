// Package estimate holds the proposal aggregate: equipment systems offered in
// Good/Better/Best tiers, add-on line items, cached totals and the
// pending → approved lifecycle.
package estimate

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tier is a quality/price level offered for each system.
type Tier string

const (
	TierGood   Tier = "Good"
	TierBetter Tier = "Better"
	TierBest   Tier = "Best"
)

// Tiers returns the tiers in presentation order.
func Tiers() []Tier {
	return []Tier{TierGood, TierBetter, TierBest}
}

// ParseTier accepts a tier name in any letter case.
func ParseTier(raw string) (Tier, bool) {
	for _, tier := range Tiers() {
		if strings.EqualFold(raw, string(tier)) {
			return tier, true
		}
	}
	return "", false
}

// PhotoCategory groups equipment types for tier merchandising photos.
type PhotoCategory string

const (
	PhotoCategoryAC       PhotoCategory = "ac"
	PhotoCategoryFurnace  PhotoCategory = "furnace"
	PhotoCategoryHeatPump PhotoCategory = "heatpump"
)

// DisplayName returns the label used in settings screens.
func (c PhotoCategory) DisplayName() string {
	switch c {
	case PhotoCategoryFurnace:
		return "Furnace"
	case PhotoCategoryHeatPump:
		return "Heat Pump"
	default:
		return "AC"
	}
}

// EquipmentType is the closed set of equipment configurations a system can be.
type EquipmentType string

const (
	EquipmentACOnly                 EquipmentType = "AC Only"
	EquipmentCoilOnly               EquipmentType = "Coil Only"
	EquipmentACCondenserOnly        EquipmentType = "AC Condenser Only"
	EquipmentHeatPumpOnly           EquipmentType = "Heat Pump Only"
	EquipmentACCondenserCoil        EquipmentType = "AC Condenser + Coil"
	EquipmentACCondenserCoilFurnace EquipmentType = "AC Condenser + Coil + Furnace"
	EquipmentHeatPumpAirHandler     EquipmentType = "Heat Pump + Air Handler"
	EquipmentACFurnace              EquipmentType = "AC + Furnace"
	EquipmentFurnaceOnly            EquipmentType = "Furnace Only"
	EquipmentAirHandlerOnly         EquipmentType = "Air Handler Only"
)

// EquipmentTypes returns every equipment type.
func EquipmentTypes() []EquipmentType {
	return []EquipmentType{
		EquipmentACOnly,
		EquipmentCoilOnly,
		EquipmentACCondenserOnly,
		EquipmentHeatPumpOnly,
		EquipmentACCondenserCoil,
		EquipmentACCondenserCoilFurnace,
		EquipmentHeatPumpAirHandler,
		EquipmentACFurnace,
		EquipmentFurnaceOnly,
		EquipmentAirHandlerOnly,
	}
}

// ParseEquipmentType accepts an equipment type name in any letter case.
func ParseEquipmentType(raw string) (EquipmentType, bool) {
	for _, eq := range EquipmentTypes() {
		if strings.EqualFold(raw, string(eq)) {
			return eq, true
		}
	}
	return "", false
}

// PhotoCategory maps the equipment type to its merchandising category.
func (t EquipmentType) PhotoCategory() PhotoCategory {
	switch t {
	case EquipmentFurnaceOnly:
		return PhotoCategoryFurnace
	case EquipmentHeatPumpOnly, EquipmentHeatPumpAirHandler:
		return PhotoCategoryHeatPump
	default:
		return PhotoCategoryAC
	}
}

// Status is the proposal lifecycle state.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
)

// AddOnTemplate is a reusable, priced add-on definition owned by the catalog.
type AddOnTemplate struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	DefaultPrice       float64 `json:"defaultPrice"`
	Enabled            bool    `json:"enabled"`
	FreeWhenTierIsBest bool    `json:"freeWhenTierIsBest"`
	UseQuantity        bool    `json:"useQuantity"`
}

// AddOn is a line item on an estimate. An empty SystemID applies it to the
// whole estimate; TemplateID is informational only.
type AddOn struct {
	ID          string  `json:"id"`
	TemplateID  string  `json:"templateId,omitempty"`
	SystemID    string  `json:"systemId,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Enabled     bool    `json:"enabled"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// LineTotal is the unit price times the quantity.
func (a AddOn) LineTotal() float64 {
	return a.Price * float64(max(1, a.Quantity))
}

// Option is one tier's configuration of a system.
type Option struct {
	ID                 string   `json:"id"`
	Tier               Tier     `json:"tier"`
	ShowToCustomer     bool     `json:"showToCustomer"`
	SelectedByCustomer bool     `json:"isSelectedByCustomer"`
	SEER               float64  `json:"seer"`
	Stage              string   `json:"stage"`
	Tonnage            float64  `json:"tonnage"`
	Price              float64  `json:"price"`
	ImageName          *string  `json:"imageName,omitempty"`
	OutdoorModel       *string  `json:"outdoorModel,omitempty"`
	IndoorModel        *string  `json:"indoorModel,omitempty"`
	FurnaceModel       *string  `json:"furnaceModel,omitempty"`
	WarrantyText       *string  `json:"warrantyText,omitempty"`
	Advantages         []string `json:"advantages"`
}

// ExistingEquipment describes what is installed today.
type ExistingEquipment struct {
	Brand    *string `json:"brand,omitempty"`
	Model    *string `json:"model,omitempty"`
	AgeYears *int    `json:"ageYears,omitempty"`
	Location *string `json:"location,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// System is one piece of equipment being proposed.
type System struct {
	ID            string            `json:"id"`
	Enabled       bool              `json:"enabled"`
	Name          string            `json:"name"`
	Tonnage       float64           `json:"tonnage"`
	FurnaceBTU    *float64          `json:"furnaceBTU,omitempty"`
	EquipmentType EquipmentType     `json:"equipmentType"`
	Existing      ExistingEquipment `json:"existing"`
	Options       []Option          `json:"options"`
}

// SelectedOption returns the option the customer picked, if any.
func (s System) SelectedOption() (Option, bool) {
	for _, opt := range s.Options {
		if opt.SelectedByCustomer {
			return opt, true
		}
	}
	return Option{}, false
}

// OptionForTier returns the system's option for tier, if any.
func (s System) OptionForTier(tier Tier) (Option, bool) {
	for _, opt := range s.Options {
		if opt.Tier == tier {
			return opt, true
		}
	}
	return Option{}, false
}

// Estimate is the proposal aggregate root. SystemsSubtotal, AddOnsSubtotal
// and GrandTotal are cached and refreshed by every mutating method.
type Estimate struct {
	ID              string     `json:"id"`
	Date            time.Time  `json:"estimateDate"`
	Number          string     `json:"estimateNumber"`
	Status          Status     `json:"status"`
	CustomerName    string     `json:"customerName"`
	Address         string     `json:"address"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Systems         []System   `json:"systems"`
	AddOns          []AddOn    `json:"addOns"`
	SystemsSubtotal float64    `json:"systemsSubtotal"`
	AddOnsSubtotal  float64    `json:"addOnsSubtotal"`
	GrandTotal      float64    `json:"grandTotal"`
	SignatureImage  []byte     `json:"customerSignatureImageData,omitempty"`
	SignatureDate   *time.Time `json:"customerSignatureDate,omitempty"`
}

// now is replaced in tests.
var now = time.Now

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// New returns an empty pending estimate dated now.
func New() *Estimate {
	return &Estimate{
		ID:      NewID(),
		Date:    now(),
		Status:  StatusPending,
		Systems: []System{},
		AddOns:  []AddOn{},
	}
}
