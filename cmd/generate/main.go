// Command generate writes a sample workbook to disk, exercising the batch
// builder and the complex-header operations without the HTTP server.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/alyonazakharova/excel-constructor/pkg/sheetbuilder"
)

func main() {
	output := flag.String("o", "sample.xlsx", "output file path")
	flag.Parse()

	if err := run(context.Background(), *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, output string) error {
	b := sheetbuilder.New()

	headers := []sheetbuilder.Header{
		{
			{Field: "month", Name: "Month", Width: 15},
			{Field: "region", Name: "Region", Width: 15},
			{Field: "rep", Name: "Sales Rep", Width: 20},
			{Field: "amount", Name: "Sale Amount", Width: 15},
		},
		{
			{Field: "name", Name: "Name", Width: 25},
			{Field: "price", Name: "Price", Width: 12},
			{Field: "category", Name: "Category", Width: 18},
		},
	}
	data := [][]sheetbuilder.Row{
		{
			{"month": "January", "region": "East", "rep": "Alice", "amount": 5000.0},
			{"month": "February", "region": "West", "rep": "Bob", "amount": 4500.0},
		},
		{
			{"name": "Laptop Pro", "price": 1299.99, "category": "Electronics"},
			{"name": "Smartphone X", "price": 899.99, "category": "Electronics"},
		},
	}
	names := []string{"Sales", "Products"}

	buf, err := b.CreateBuffer(ctx, headers, data, names)
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}

	// Add a summary sheet with a merged two-level header on top of the
	// generated workbook.
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("reopening workbook: %w", err)
	}
	defer f.Close()

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	if err := b.SetComplexHeaders(f, summary, []sheetbuilder.ComplexHeader{
		{From: "A1", To: "B1", Value: "Quarterly Report"},
		{Cell: "C1", Value: "Generated"},
		{From: "A2", To: "A3", Value: "Totals"},
	}); err != nil {
		return fmt.Errorf("setting summary headers: %w", err)
	}
	if err := b.MakeRowsBold(f, summary, 1); err != nil {
		return fmt.Errorf("styling summary: %w", err)
	}

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("saving %s: %w", output, err)
	}
	fmt.Printf("wrote %s\n", output)
	return nil
}
