// Package dicom exports the ward census as DICOM files, one per bed, so the
// admitted patients can be imported into a PACS worklist.
package dicom

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mrsinham/bedgrid/internal/util"
	"github.com/mrsinham/bedgrid/internal/ward"
	"github.com/rs/zerolog/log"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

const (
	// explicitVRLittleEndian is the transfer syntax of every exported file.
	explicitVRLittleEndian = "1.2.840.10008.1.2.1"
	// secondaryCaptureSOPClass is the SOP class of the census objects.
	secondaryCaptureSOPClass = "1.2.840.10008.5.1.4.1.1.7"
)

// ExportOptions configures ExportCensus.
type ExportOptions struct {
	OutputDir string
	// Date is the census date; admitting dates are computed back from it.
	// Zero means today.
	Date time.Time
	Tags CensusTags
}

// ExportedFile is one written bed file.
type ExportedFile struct {
	Path       string
	Pos        ward.Position
	NationalID string
}

// ExportCensus writes a DICOM file for every active bed of store. All files
// share one study and one series.
func ExportCensus(store *ward.Store, opts ExportOptions) ([]ExportedFile, error) {
	if store.Len() == 0 {
		return nil, fmt.Errorf("no beds to export")
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	studyUID := util.NewUID()
	seriesUID := util.NewUID()

	files := make([]ExportedFile, 0, store.Len())
	for pos, p := range store.All() {
		path := filepath.Join(opts.OutputDir, fmt.Sprintf("BED%02d%02d.dcm", pos.Row, pos.Col))

		instance := pos.Row*store.Cols() + pos.Col + 1
		elements, err := bedElements(p, pos, instance, date, studyUID, seriesUID, opts.Tags)
		if err != nil {
			return files, fmt.Errorf("bed %v: %w", pos, err)
		}
		if err := writeDatasetToFile(path, dicom.Dataset{Elements: elements}); err != nil {
			return files, fmt.Errorf("write %s: %w", path, err)
		}

		files = append(files, ExportedFile{Path: path, Pos: pos, NationalID: p.NationalID})
	}

	log.Info().Str("dir", opts.OutputDir).Int("files", len(files)).Msg("DICOM census exported")
	return files, nil
}

// writeDatasetToFile writes a DICOM dataset to a file. A failed write
// removes the partial file.
func writeDatasetToFile(filename string, ds dicom.Dataset, opts ...dicom.WriteOption) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(filename)
		}
	}()

	return dicom.Write(f, ds, opts...)
}

// elementList collects elements and keeps the first construction error.
type elementList struct {
	elems []*dicom.Element
	err   error
}

func (l *elementList) add(t tag.Tag, value any) {
	if l.err != nil {
		return
	}
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		l.err = fmt.Errorf("element %v: %w", t, err)
		return
	}
	l.elems = append(l.elems, elem)
}

func bedElements(p ward.Patient, pos ward.Position, instance int, date time.Time, studyUID, seriesUID string, tags CensusTags) ([]*dicom.Element, error) {
	sopInstanceUID := util.NewUID()

	var l elementList
	l.add(tag.MediaStorageSOPClassUID, []string{secondaryCaptureSOPClass})
	l.add(tag.MediaStorageSOPInstanceUID, []string{sopInstanceUID})
	l.add(tag.TransferSyntaxUID, []string{explicitVRLittleEndian})
	l.add(tag.SOPClassUID, []string{secondaryCaptureSOPClass})
	l.add(tag.SOPInstanceUID, []string{sopInstanceUID})
	l.add(tag.StudyInstanceUID, []string{studyUID})
	l.add(tag.SeriesInstanceUID, []string{seriesUID})
	l.add(tag.StudyDate, []string{date.Format("20060102")})
	l.add(tag.Modality, []string{"OT"})
	l.add(tag.InstanceNumber, []string{fmt.Sprintf("%d", instance)})

	l.add(tag.PatientName, []string{PersonName(p.Name)})
	l.add(tag.PatientID, []string{p.NationalID})
	l.add(tag.PatientAge, []string{fmt.Sprintf("%03dY", p.Age)})
	if admitted, ok := admittingDate(date, p.DaysAdmitted); ok {
		l.add(tag.AdmittingDate, []string{admitted})
	} else {
		log.Debug().Int("days_admitted", p.DaysAdmitted).Stringer("bed", pos).Msg("admitting date out of DA range, omitted")
	}
	l.add(tag.CurrentPatientLocation, []string{fmt.Sprintf("CAMA %d-%d", pos.Row, pos.Col)})

	for t, v := range tags {
		l.add(t, []string{v})
	}
	if l.err != nil {
		return nil, l.err
	}

	slices.SortFunc(l.elems, func(a, b *dicom.Element) int {
		return tagOrder(a.Tag) - tagOrder(b.Tag)
	})
	return l.elems, nil
}

// admittingDate returns the DA value for a stay of days ending on date. DA
// holds years 0001 to 9999 only; longer stays report false.
func admittingDate(date time.Time, days int) (string, bool) {
	admitted := date.AddDate(0, 0, -days)
	if y := admitted.Year(); y < 1 || y > 9999 {
		return "", false
	}
	return admitted.Format("20060102"), true
}

func tagOrder(t tag.Tag) int {
	return int(t.Group)<<16 | int(t.Element)
}

// PersonName converts "Ana Maria Lopez" to the DICOM PN form
// "Lopez^Ana Maria". Single-word names are returned unchanged.
func PersonName(name string) string {
	words := strings.Fields(name)
	if len(words) < 2 {
		return strings.Join(words, "")
	}
	last := words[len(words)-1]
	return last + "^" + strings.Join(words[:len(words)-1], " ")
}
