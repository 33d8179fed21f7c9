// Package refdata embeds the static reference datasets: the conference and
// school lists used for team identity at new-game setup, and the weighted
// name corpus used for recruit naming. Both are read-only and loaded once.
package refdata

import (
	_ "embed"
	"fmt"
	"math/rand"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed schools.yaml
var schoolsYAML []byte

//go:embed names.yaml
var namesYAML []byte

// Conference is a named grouping of schools.
type Conference struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// School identifies one college program.
type School struct {
	Name         string `yaml:"name"`
	Nickname     string `yaml:"nickname"`
	Abbr         string `yaml:"abbr"`
	City         string `yaml:"city"`
	State        string `yaml:"state"`
	ConferenceID int64  `yaml:"conference_id"`
}

type schoolsFile struct {
	Conferences []Conference `yaml:"conferences"`
	Schools     []School     `yaml:"schools"`
}

var (
	loadSchoolsOnce sync.Once
	loadedSchools   schoolsFile
	loadSchoolsErr  error
)

func loadSchools() (schoolsFile, error) {
	loadSchoolsOnce.Do(func() {
		loadSchoolsErr = yaml.Unmarshal(schoolsYAML, &loadedSchools)
	})
	if loadSchoolsErr != nil {
		return schoolsFile{}, fmt.Errorf("parsing schools.yaml: %w", loadSchoolsErr)
	}
	return loadedSchools, nil
}

// Conferences returns every defined conference.
func Conferences() ([]Conference, error) {
	f, err := loadSchools()
	if err != nil {
		return nil, err
	}
	return f.Conferences, nil
}

// Schools returns every defined school.
func Schools() ([]School, error) {
	f, err := loadSchools()
	if err != nil {
		return nil, err
	}
	return f.Schools, nil
}

// weightedName is one corpus entry; weight skews the draw toward common
// names.
type weightedName struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type namesFile struct {
	First []weightedName `yaml:"first"`
	Last  []weightedName `yaml:"last"`
}

// NameCorpus draws weighted random athlete names.
type NameCorpus struct {
	first, last []weightedName
	firstTotal  float64
	lastTotal   float64
}

var (
	loadNamesOnce sync.Once
	loadedCorpus  *NameCorpus
	loadNamesErr  error
)

// Names returns the embedded name corpus.
func Names() (*NameCorpus, error) {
	loadNamesOnce.Do(func() {
		var f namesFile
		if err := yaml.Unmarshal(namesYAML, &f); err != nil {
			loadNamesErr = fmt.Errorf("parsing names.yaml: %w", err)
			return
		}
		c := &NameCorpus{first: f.First, last: f.Last}
		for _, n := range c.first {
			c.firstTotal += n.Weight
		}
		for _, n := range c.last {
			c.lastTotal += n.Weight
		}
		if len(c.first) == 0 || len(c.last) == 0 {
			loadNamesErr = fmt.Errorf("name corpus is empty")
			return
		}
		loadedCorpus = c
	})
	if loadNamesErr != nil {
		return nil, loadNamesErr
	}
	return loadedCorpus, nil
}

// RandomFullName draws a weighted first and last name.
func (c *NameCorpus) RandomFullName(rng *rand.Rand) (string, string) {
	return pickWeighted(rng, c.first, c.firstTotal), pickWeighted(rng, c.last, c.lastTotal)
}

func pickWeighted(rng *rand.Rand, names []weightedName, total float64) string {
	roll := rng.Float64() * total
	acc := 0.0
	for _, n := range names {
		acc += n.Weight
		if roll <= acc {
			return n.Name
		}
	}
	return names[len(names)-1].Name
}
