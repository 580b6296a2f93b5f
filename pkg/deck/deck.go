// Package deck loads and saves slide fixture files.
//
// A deck file is a TOML document describing one slide: freely positioned
// objects and optional tables. Decks are the working material of the CLI
// and the HTTP facade - load a deck, run a layout operation against a
// selection of its objects, save the deck back. They double as readable
// test fixtures.
package deck

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
	"github.com/slidekit/slidekit/pkg/table"
)

// objectSpec is the on-disk form of one positioned object.
type objectSpec struct {
	ID     string  `toml:"id,omitempty"`
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Locked bool    `toml:"locked,omitempty"`
}

// cellSpec is the on-disk form of one non-empty table cell.
type cellSpec struct {
	Row   int    `toml:"row"`
	Col   int    `toml:"col"`
	Text  string `toml:"text"`
	Merge string `toml:"merge,omitempty"`
}

// tableSpec is the on-disk form of one table.
type tableSpec struct {
	ID         string     `toml:"id,omitempty"`
	Left       float64    `toml:"left"`
	Top        float64    `toml:"top"`
	ColWidths  []float64  `toml:"col_widths"`
	RowHeights []float64  `toml:"row_heights"`
	Cells      []cellSpec `toml:"cells,omitempty"`
}

// fileModel is the full on-disk document.
type fileModel struct {
	Title   string       `toml:"title,omitempty"`
	DocID   string       `toml:"doc_id,omitempty"`
	Objects []objectSpec `toml:"objects"`
	Tables  []tableSpec  `toml:"tables,omitempty"`
}

// Deck is a loaded slide: objects in file order, tables addressable both as
// selectable objects and as table hosts.
type Deck struct {
	Title string
	DocID string

	objects []slide.Object
	byID    map[string]slide.Object
	tables  []*table.MemoryTable
	locked  map[string]bool
}

// Load reads a deck file.
//
// Objects without an id get a generated UUID. Locked objects are wrapped so
// their setters fail, which is how fixtures exercise per-element failure
// accounting. Sizes must be positive.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read deck %s", path)
	}
	return Parse(data)
}

// Parse decodes a deck from TOML bytes.
func Parse(data []byte) (*Deck, error) {
	var model fileModel
	if err := toml.Unmarshal(data, &model); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode deck")
	}

	d := &Deck{
		Title:  model.Title,
		DocID:  model.DocID,
		byID:   make(map[string]slide.Object),
		locked: make(map[string]bool),
	}

	for i, spec := range model.Objects {
		if spec.Width <= 0 || spec.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"object %d (%q): size %gx%g is not positive", i, spec.ID, spec.Width, spec.Height)
		}
		var o slide.Object = slide.NewBox(spec.ID, spec.Left, spec.Top, spec.Width, spec.Height)
		if spec.Locked {
			o = slide.Lock(o)
			d.locked[o.ID()] = true
		}
		if err := d.add(o); err != nil {
			return nil, err
		}
	}

	for i, spec := range model.Tables {
		if len(spec.ColWidths) == 0 || len(spec.RowHeights) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"table %d (%q): col_widths and row_heights must be non-empty", i, spec.ID)
		}
		tbl := table.NewMemoryTable(spec.Left, spec.Top, spec.ColWidths, spec.RowHeights)
		for _, cell := range spec.Cells {
			if cell.Row < 0 || cell.Row >= tbl.RowCount() || cell.Col < 0 || cell.Col >= tbl.ColCount() {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"table %d (%q): cell (%d,%d) out of range", i, spec.ID, cell.Row, cell.Col)
			}
			mc := tbl.CellAt(cell.Row, cell.Col)
			if err := mc.SetText(cell.Text); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "set cell text")
			}
			merge, err := parseMerge(cell.Merge)
			if err != nil {
				return nil, err
			}
			mc.SetMerge(merge)
		}
		id := spec.ID
		if id == "" {
			id = uuid.NewString()
		}
		d.tables = append(d.tables, tbl)
		if err := d.add(table.NewTableBox(id, tbl)); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Deck) add(o slide.Object) error {
	if _, dup := d.byID[o.ID()]; dup {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate object id %q", o.ID())
	}
	d.objects = append(d.objects, o)
	d.byID[o.ID()] = o
	return nil
}

func parseMerge(s string) (table.MergeState, error) {
	switch s {
	case "", "normal":
		return table.MergeNormal, nil
	case "origin":
		return table.MergeOrigin, nil
	case "continuation":
		return table.MergeContinuation, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown merge state %q", s)
}

// Objects returns every object (tables included) in file order.
func (d *Deck) Objects() slide.Selection {
	return append(slide.Selection(nil), d.objects...)
}

// Select builds a selection from object ids, preserving the given order.
// The order matters: the last id is the fallback anchor of anchor-relative
// operations. With no ids, the whole deck in file order is selected.
func (d *Deck) Select(ids ...string) (slide.Selection, error) {
	if len(ids) == 0 {
		return d.Objects(), nil
	}
	sel := make(slide.Selection, 0, len(ids))
	for _, id := range ids {
		o, ok := d.byID[id]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "no object %q in deck", id)
		}
		sel = append(sel, o)
	}
	return sel, nil
}

// Page exposes the deck's tables for table-resolution during swaps.
func (d *Deck) Page() table.Page {
	tables := make([]table.Table, len(d.tables))
	for i, t := range d.tables {
		tables[i] = t
	}
	return table.NewMemoryPage(tables...)
}

// Save writes the deck back to path, with geometry refreshed from the live
// objects. Cell merge states and texts are written back too; styled spans
// are runtime-only and not part of the file format.
func (d *Deck) Save(path string) error {
	model := fileModel{Title: d.Title, DocID: d.DocID}

	tableIdx := 0
	for _, o := range d.objects {
		if to, ok := o.(*table.TableBox); ok {
			tbl := d.tables[tableIdx]
			tableIdx++
			spec := tableSpec{
				ID:         to.ID(),
				Left:       to.Left(),
				Top:        to.Top(),
				ColWidths:  make([]float64, tbl.ColCount()),
				RowHeights: make([]float64, tbl.RowCount()),
			}
			for c := range spec.ColWidths {
				spec.ColWidths[c] = tbl.ColWidth(c)
			}
			for r := range spec.RowHeights {
				spec.RowHeights[r] = tbl.RowHeight(r)
			}
			for r := 0; r < tbl.RowCount(); r++ {
				for c := 0; c < tbl.ColCount(); c++ {
					cell := tbl.CellAt(r, c)
					if cell.Text() == "" && cell.Merge() == table.MergeNormal {
						continue
					}
					cs := cellSpec{Row: r, Col: c, Text: cell.Text()}
					if cell.Merge() != table.MergeNormal {
						cs.Merge = cell.Merge().String()
					}
					spec.Cells = append(spec.Cells, cs)
				}
			}
			model.Tables = append(model.Tables, spec)
			continue
		}
		model.Objects = append(model.Objects, objectSpec{
			ID:     o.ID(),
			Left:   o.Left(),
			Top:    o.Top(),
			Width:  o.Width(),
			Height: o.Height(),
			Locked: d.locked[o.ID()],
		})
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(model); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode deck")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write deck %s", path)
	}
	return nil
}

// String summarizes the deck for logs and the inspect view.
func (d *Deck) String() string {
	return fmt.Sprintf("%d objects, %d tables", len(d.objects)-len(d.tables), len(d.tables))
}
