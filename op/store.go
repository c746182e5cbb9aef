package op

import (
	"fmt"
	"strings"
	"time"

	"github.com/nickyhof/StoreDB/core"
	"github.com/nickyhof/StoreDB/db"
)

type StoreOp struct {
	Store *db.Store
}

func (op *StoreOp) Name() string {
	return op.Store.Name()
}

func (op *StoreOp) NewRecord(text string) (db.Result, error) {
	record, err := ParseRecord(text)
	if err != nil {
		return nil, err
	}
	id := op.Store.AddRecord(record)
	return db.MessageResult{Message: fmt.Sprintf("Created record %d", id)}, nil
}

func (op *StoreOp) DeleteRecord(idText string) (db.Result, error) {
	id, err := ParseID(idText)
	if err != nil {
		return nil, err
	}
	if err := op.Store.DeleteRecord(id); err != nil {
		return nil, err
	}
	return db.MessageResult{Message: fmt.Sprintf("Deleted record %d", id)}, nil
}

func (op *StoreOp) GetRecord(idText string) (db.Result, error) {
	id, err := ParseID(idText)
	if err != nil {
		return nil, err
	}
	record, err := op.Store.GetRecord(id)
	if err != nil {
		return nil, err
	}
	return db.RecordsResult{Entries: []db.Entry{{ID: id, Record: record}}}, nil
}

func (op *StoreOp) ListRecords() db.Result {
	start := time.Now()
	result := db.RecordsResult{Entries: op.Store.Entries(), Empty: "No records"}
	result.ExecutionTimeSec = time.Since(start).Seconds()
	return result
}

func (op *StoreOp) Filter(attribute string, value string) (db.Result, error) {
	start := time.Now()
	records, err := op.Store.Filter(attribute, value)
	if err != nil {
		return nil, err
	}
	return timed(records, start), nil
}

// Filters takes comma separated attributes and values paired by position.
func (op *StoreOp) Filters(attributes string, values string) (db.Result, error) {
	start := time.Now()
	records, err := op.Store.FilterAttributes(ParseList(attributes), ParseList(values))
	if err != nil {
		return nil, err
	}
	return timed(records, start), nil
}

func (op *StoreOp) Query(attribute string, operator string, value string) (db.Result, error) {
	queryOperator, err := core.ParseOperator(operator)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	records := op.Store.Query(attribute, queryOperator, core.Infer(value))
	return timed(records, start), nil
}

func (op *StoreOp) Sort(attribute string, direction string) (db.Result, error) {
	ascending, err := ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	entries := op.Store.SortBy(attribute, ascending)
	return db.RecordsResult{
		Entries:          entries,
		Empty:            "No records",
		ExecutionTimeSec: time.Since(start).Seconds(),
	}, nil
}

// Operators lists the query operators with their descriptions.
func Operators() db.Result {
	lines := make([]string, 0, len(core.Operators()))
	for _, operator := range core.Operators() {
		lines = append(lines, fmt.Sprintf("  %-9s %s", operator, operator.Description()))
	}
	return db.MessageResult{Message: strings.Join(lines, "\n")}
}

func timed(records map[int64]core.Record, start time.Time) db.RecordsResult {
	result := db.NewRecordsResult(records, "No matching records")
	result.ExecutionTimeSec = time.Since(start).Seconds()
	return result
}
