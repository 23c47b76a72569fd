package cli

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gostonefire/recordtable"
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

const menu = `
Menu:
1. Insert record
2. Update record
3. Remove record
4. List records
5. Search record
6. Statistics
0. Exit
`

// Harness - Console menu loop driving one record table
type Harness struct {
	table  *recordtable.RecordTable
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// NewHarness - Returns a harness reading commands from in and writing results to out.
// The table is owned by the caller, the harness never tears it down.
func NewHarness(table *recordtable.RecordTable, in io.Reader, out io.Writer, logger *zap.Logger) *Harness {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Harness{
		table:  table,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run - Shows the menu and executes chosen options until 0 is chosen or input ends.
// Bad input and failed operations are reported and the loop continues, only read errors other than
// io.EOF are returned.
func (H *Harness) Run() (err error) {
	for {
		H.printf("%s", menu)

		var line string
		line, err = H.readLine("Choose an option: ")
		if err != nil {
			break
		}

		switch strings.TrimSpace(line) {
		case "1":
			err = H.insert()
		case "2":
			err = H.update()
		case "3":
			err = H.remove()
		case "4":
			err = H.list()
		case "5":
			err = H.search()
		case "6":
			err = H.stat()
		case "0":
			H.printf("Exiting...\n")
			return nil
		default:
			H.printf("Invalid option! Try again.\n")
		}

		if err != nil {
			if errors.Cause(err) == io.EOF {
				break
			}
			H.logger.Warn("operation failed", zap.Error(err))
			H.printf("Error: %s\n", err)
			err = nil
		}
	}

	if errors.Cause(err) == io.EOF {
		H.printf("Exiting...\n")
		return nil
	}

	return errors.Trace(err)
}

func (H *Harness) insert() (err error) {
	id, err := H.readInt("ID: ", "id")
	if err != nil {
		return
	}
	title, err := H.readTitle("Title: ")
	if err != nil {
		return
	}
	year, err := H.readInt("Year: ", "year")
	if err != nil {
		return
	}

	err = H.table.Insert(recordtable.NewRecord(id, title, year))
	switch {
	case err == nil:
		H.printf("Record inserted.\n")
	case stderrors.Is(err, crt.DuplicateKey{}):
		H.printf("ID %d already exists! Update the record instead of inserting.\n", id)
	case stderrors.Is(err, crt.TableFull{}):
		H.printf("Table is full! The record could not be inserted.\n")
	case stderrors.Is(err, crt.AllocationFailure{}):
		H.printf("Memory allocation failed! The record could not be inserted.\n")
	default:
		return errors.Annotatef(err, "insert of id %d", id)
	}

	return nil
}

func (H *Harness) update() (err error) {
	id, err := H.readInt("ID: ", "id")
	if err != nil {
		return
	}
	title, err := H.readTitle("New title: ")
	if err != nil {
		return
	}
	year, err := H.readInt("New year: ", "year")
	if err != nil {
		return
	}

	err = H.table.Update(id, recordtable.NewRecord(id, title, year))
	switch {
	case err == nil:
		H.printf("Record updated.\n")
	case stderrors.Is(err, crt.NotFound{}):
		H.printf("Record with ID %d not found for update.\n", id)
	default:
		return errors.Annotatef(err, "update of id %d", id)
	}

	return nil
}

func (H *Harness) remove() (err error) {
	id, err := H.readInt("ID: ", "id")
	if err != nil {
		return
	}

	err = H.table.Remove(id)
	switch {
	case err == nil:
		H.printf("Record removed.\n")
	case stderrors.Is(err, crt.NotFound{}):
		H.printf("Record with ID %d not found for removal.\n", id)
	default:
		return errors.Annotatef(err, "remove of id %d", id)
	}

	return nil
}

func (H *Harness) search() (err error) {
	id, err := H.readInt("ID: ", "id")
	if err != nil {
		return
	}

	record, err := H.table.Get(id)
	switch {
	case err == nil:
		H.printf("%s\n", formatRecord(record))
	case stderrors.Is(err, crt.NotFound{}):
		H.printf("Record with ID %d not found.\n", id)
	default:
		return errors.Annotatef(err, "search for id %d", id)
	}

	return nil
}

func (H *Harness) list() (err error) {
	H.printf("\nRecords:\n")

	iter := H.table.List()
	for iter.HasNext() {
		var bucket recordtable.Bucket
		bucket, err = iter.Next()
		if err != nil {
			return errors.Annotate(err, "list")
		}
		if H.table.CollisionResolutionTechnique() == crt.OpenAddressing {
			H.printf("%s\n", formatSlot(bucket))
		} else {
			H.printf("%s\n", formatBucket(bucket))
		}
	}

	return nil
}

func (H *Harness) stat() (err error) {
	stat, err := H.table.Stat(false)
	if err != nil {
		return errors.Annotate(err, "statistics")
	}

	H.printf("Buckets: %d\n", H.table.NumberOfBuckets())
	H.printf("Records: %d\n", stat.Records)
	H.printf("Empty buckets: %d\n", stat.EmptyBuckets)
	if H.table.CollisionResolutionTechnique() == crt.OpenAddressing {
		H.printf("Tombstones: %d\n", stat.Tombstones)
	} else {
		H.printf("Live nodes: %d\n", stat.LiveNodes)
	}
	H.printf("Load factor: %.2f\n", stat.LoadFactor)

	return nil
}

// readLine - Prints the prompt and returns the next input line without its line ending
func (H *Harness) readLine(prompt string) (line string, err error) {
	H.printf("%s", prompt)

	line, err = H.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", errors.Trace(err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (H *Harness) readInt(prompt, what string) (n int64, err error) {
	line, err := H.readLine(prompt)
	if err != nil {
		return
	}

	s := strings.TrimSpace(line)
	n, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		err = errors.Annotatef(err, "invalid %s %q", what, s)
	}

	return
}

// readTitle - Reads a title, warning when it will be truncated
func (H *Harness) readTitle(prompt string) (title string, err error) {
	line, err := H.readLine(prompt)
	if err != nil {
		return
	}

	title = strings.TrimSpace(line)
	if !recordtable.TitleFits(title) {
		H.printf("Warning: title longer than %d characters, it will be truncated.\n", conf.MaxTitleLength)
	}

	return
}

func (H *Harness) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(H.out, format, a...)
}

func formatRecord(record recordtable.Record) string {
	return fmt.Sprintf("ID: %d, Title: %s, Year: %d", record.Id, record.Title, record.Year)
}

// formatSlot - Formats one open addressing slot
func formatSlot(bucket recordtable.Bucket) string {
	switch bucket.State {
	case recordtable.SlotOccupied:
		return fmt.Sprintf("Slot %d -> %s", bucket.BucketNo, formatRecord(bucket.Records[0]))
	case recordtable.SlotTombstone:
		return fmt.Sprintf("Slot %d -> Removed", bucket.BucketNo)
	default:
		return fmt.Sprintf("Slot %d -> Empty", bucket.BucketNo)
	}
}

// formatBucket - Formats one separate chaining bucket, newest record first
func formatBucket(bucket recordtable.Bucket) string {
	if len(bucket.Records) == 0 {
		return fmt.Sprintf("Bucket %d -> Empty", bucket.BucketNo)
	}

	parts := make([]string, 0, len(bucket.Records))
	for _, record := range bucket.Records {
		parts = append(parts, "["+formatRecord(record)+"]")
	}

	return fmt.Sprintf("Bucket %d -> %s", bucket.BucketNo, strings.Join(parts, " "))
}
