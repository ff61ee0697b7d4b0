// Package address implements the three-level Thai address selection cascade:
// province, district, sub-district with its zipcode.
package address

import (
	"context"
	"sync"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

// Source supplies the dependent option lists.
type Source interface {
	Districts(ctx context.Context, provinceID string) ([]models.SelectOption, error)
	SubDistricts(ctx context.Context, districtID string) ([]SubDistrictOption, error)
}

// SubDistrictOption carries the zipcode alongside the option pair so
// selecting a sub-district needs no further fetch.
type SubDistrictOption struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Zipcode string `json:"zipcode"`
}

// State is a consistent snapshot of the cascade.
type State struct {
	Province     string                `json:"province"`
	District     string                `json:"district"`
	SubDistrict  string                `json:"subDistrict"`
	Zipcode      string                `json:"zipcode"`
	Districts    []models.SelectOption `json:"districts"`
	SubDistricts []SubDistrictOption   `json:"subDistricts"`
}

// Cascade is the selection model behind the address editor: the lookup
// endpoints feed its option lists and AddressService.ValidateChain enforces
// its end state on every submitted address. It is the reference
// implementation for clients driving the lookups; the server keeps no
// per-session address state.
//
// Cascade synchronizes the three dependent levels. Selecting a province
// clears district, sub-district and zipcode and fetches the province's
// districts; selecting a district clears sub-district and zipcode and fetches
// its sub-districts; selecting a sub-district sets the zipcode from the
// already-fetched candidate list. Each fetch is tagged with a sequence number
// taken while clearing, and a response whose sequence is no longer current is
// discarded, so a slow earlier fetch can never overwrite a later selection.
type Cascade struct {
	src Source

	mu           sync.Mutex
	districtSeq  uint64
	subDistSeq   uint64
	province     string
	district     string
	subDistrict  string
	zipcode      string
	districts    []models.SelectOption
	subDistricts []SubDistrictOption
}

func NewCascade(src Source) *Cascade {
	return &Cascade{src: src}
}

// SelectProvince clears every dependent level before fetching, so observers
// never see a district from the previous province.
func (c *Cascade) SelectProvince(ctx context.Context, provinceID string) error {
	c.mu.Lock()
	c.province = provinceID
	c.district = ""
	c.subDistrict = ""
	c.zipcode = ""
	c.districts = nil
	c.subDistricts = nil
	c.districtSeq++
	c.subDistSeq++
	seq := c.districtSeq
	c.mu.Unlock()

	districts, err := c.src.Districts(ctx, provinceID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.districtSeq != seq {
		// A later selection superseded this fetch.
		return nil
	}
	c.districts = districts
	return nil
}

func (c *Cascade) SelectDistrict(ctx context.Context, districtID string) error {
	c.mu.Lock()
	c.district = districtID
	c.subDistrict = ""
	c.zipcode = ""
	c.subDistricts = nil
	c.subDistSeq++
	seq := c.subDistSeq
	c.mu.Unlock()

	subDistricts, err := c.src.SubDistricts(ctx, districtID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subDistSeq != seq {
		return nil
	}
	c.subDistricts = subDistricts
	return nil
}

// SelectSubDistrict looks the zipcode up from the fetched candidates; it is
// the only way the zipcode is ever set.
func (c *Cascade) SelectSubDistrict(subDistrictID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, sd := range c.subDistricts {
		if sd.Value == subDistrictID {
			c.subDistrict = subDistrictID
			c.zipcode = sd.Zipcode
			return nil
		}
	}

	return apperror.NewValidation("subDistrict", "not among the fetched candidates")
}

func (c *Cascade) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Province:     c.province,
		District:     c.district,
		SubDistrict:  c.subDistrict,
		Zipcode:      c.zipcode,
		Districts:    append([]models.SelectOption(nil), c.districts...),
		SubDistricts: append([]SubDistrictOption(nil), c.subDistricts...),
	}
}
