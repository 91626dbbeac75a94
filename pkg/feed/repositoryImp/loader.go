package repositoryImp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"morafo/entities"
)

var ErrNoSuppliers = errors.New("supplier file has no usable rows")

// LoadFile reads a supplier table from .csv, .xlsx or .yaml/.yml.
func LoadFile(path string) ([]entities.FeedSupplier, error) {
	var (
		out []entities.FeedSupplier
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		out, err = loadCSV(path)
	case ".xlsx":
		out, err = loadXLSX(path)
	case ".yaml", ".yml":
		out, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported supplier file %q", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	if len(out) == 0 {
		return nil, ErrNoSuppliers
	}
	return out, nil
}

func loadCSV(path string) ([]entities.FeedSupplier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

// loadXLSX reads the first sheet.
func loadXLSX(path string) ([]entities.FeedSupplier, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSuppliers
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

type yamlFile struct {
	Suppliers []entities.FeedSupplier `yaml:"suppliers"`
}

// loadYAML accepts either a bare list or a document with a suppliers key.
func loadYAML(path string) ([]entities.FeedSupplier, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []entities.FeedSupplier
	if err := yaml.Unmarshal(b, &list); err == nil {
		return clean(list), nil
	}
	var doc yamlFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return clean(doc.Suppliers), nil
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// fromRows maps a header row plus data rows onto suppliers. Header names are
// matched loosely and a few aliases are accepted.
func fromRows(rows [][]string) ([]entities.FeedSupplier, error) {
	if len(rows) == 0 {
		return nil, ErrNoSuppliers
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	iID := findAny("id")
	iName := findAny("name", "shop", "supplier")
	iDistrict := findAny("district", "setereke")
	iLocation := findAny("location", "address", "area")
	iBrands := findAny("brands", "brand")
	iPhone := findAny("phone", "tel", "telephone")
	if iName < 0 || iDistrict < 0 {
		return nil, errors.New("header needs at least name and district columns")
	}

	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var out []entities.FeedSupplier
	for n, row := range rows[1:] {
		s := entities.FeedSupplier{
			ID:       cell(row, iID),
			Name:     cell(row, iName),
			District: cell(row, iDistrict),
			Location: cell(row, iLocation),
			Brands:   splitBrands(cell(row, iBrands)),
			Phone:    cell(row, iPhone),
		}
		if s.ID == "" {
			s.ID = strconv.Itoa(n + 1)
		}
		out = append(out, s)
	}
	return clean(out), nil
}

func splitBrands(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' || r == ',' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// clean drops rows without a name or district.
func clean(in []entities.FeedSupplier) []entities.FeedSupplier {
	out := in[:0]
	for _, s := range in {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.District) == "" {
			continue
		}
		if s.Brands == nil {
			s.Brands = []string{}
		}
		out = append(out, s)
	}
	return out
}
