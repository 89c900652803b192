package contacts

import (
	"sort"
	"strings"

	"github.com/dresiko/media-match-homework/internal/model"
)

// StaticDirectory is the built-in contact table used when no database is
// configured. Keys are pre-normalized display names.
type StaticDirectory struct {
	entries map[string]model.ContactInfo
}

func NewStaticDirectory() *StaticDirectory {
	entries := make(map[string]model.ContactInfo, len(builtinContacts))
	for _, info := range builtinContacts {
		entries[NormalizeName(info.Name)] = info
	}
	return &StaticDirectory{entries: entries}
}

func (d *StaticDirectory) Resolve(name string) (*model.ContactInfo, error) {
	info, ok := d.entries[NormalizeName(name)]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

func (d *StaticDirectory) Search(query string) ([]model.ContactInfo, error) {
	normalized := NormalizeName(query)
	if normalized == "" {
		return nil, nil
	}

	var results []model.ContactInfo
	for key, info := range d.entries {
		if strings.Contains(key, normalized) {
			results = append(results, info)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results, nil
}

func (d *StaticDirectory) All() ([]model.ContactInfo, error) {
	results := make([]model.ContactInfo, 0, len(d.entries))
	for _, info := range d.entries {
		results = append(results, info)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results, nil
}

var builtinContacts = []model.ContactInfo{
	{
		Name:     "Nick Robins-Early",
		Email:    "nick.robins-early@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/nickrobinsearly",
		Twitter:  "@nickrobinsearly",
	},
	{
		Name:     "Kalyeena Makortoff",
		Email:    "kalyeena.makortoff@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/kalyeena-makortoff",
		Twitter:  "@kmakortoff",
	},
	{
		Name:     "Lauren Almeida",
		Email:    "lauren.almeida@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/laurenalmeida",
		Twitter:  "@laurenalmeida",
	},
	{
		Name:     "Blake Montgomery",
		Email:    "blake.montgomery@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/blakemontgomery",
		Twitter:  "@blakemontgomery",
	},
	{
		Name:     "Sarah Butler",
		Email:    "sarah.butler@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/sarahbutler",
		Twitter:  "@whatbutlersaw",
	},
	{
		Name:     "Jasper Jolly",
		Email:    "jasper.jolly@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/jasperjolly",
		Twitter:  "@jasperjolly",
	},
	{
		Name:     "Rupert Jones",
		Email:    "rupert.jones@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/rupertjones",
		Twitter:  "@rupertjones",
	},
	{
		Name:     "Dan Milmo",
		Email:    "dan.milmo@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/danmilmo",
		Twitter:  "@danmilmo",
	},
	{
		Name:     "Julia Kollewe",
		Email:    "julia.kollewe@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/juliakollewe",
		Twitter:  "@juliakollewe",
	},
	{
		Name:     "Dara Kerr",
		Email:    "dara.kerr@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/darakerr",
		Twitter:  "@darakerr",
	},
	{
		Name:     "Robert Booth",
		Email:    "robert.booth@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/robertbooth",
		Twitter:  "@robert_booth",
	},
	{
		Name:     "Dharna Noor",
		Email:    "dharna.noor@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/dharnanoor",
		Twitter:  "@dharnanoor",
	},
	{
		Name:     "Jonathan Watts",
		Email:    "jonathan.watts@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/jonathanwatts",
		Twitter:  "@jonathanwatts",
	},
	{
		Name:     "Lisa O'Carroll",
		Email:    "lisa.ocarroll@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/lisaocarroll",
		Twitter:  "@lisaocarroll",
	},
	{
		Name:     "Oliver Milman",
		Email:    "oliver.milman@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/olivermilman",
		Twitter:  "@olivermilman",
	},
	{
		Name:     "Rob Davies",
		Email:    "rob.davies@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/robdavies",
		Twitter:  "@RowZephyr",
	},
	{
		Name:     "Graeme Wearden",
		Email:    "graeme.wearden@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/graemewearden",
		Twitter:  "@graemewearden",
	},
	{
		Name:     "Jillian Ambrose",
		Email:    "jillian.ambrose@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/jillianambrose",
		Twitter:  "@jillianambrose",
	},
	{
		Name:     "Richard Partington",
		Email:    "richard.partington@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/richardpartington",
		Twitter:  "@RPartington",
	},
	{
		Name:     "Hilary Osborne",
		Email:    "hilary.osborne@theguardian.com",
		LinkedIn: "https://www.linkedin.com/in/hilaryosborne",
		Twitter:  "@hilaryosborne",
	},
}
