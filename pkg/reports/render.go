package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

func renderTable(title string, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
	for _, row := range rows {
		t.Row(row...)
	}
	return titleStyle.Render(title) + "\n" + t.Render() + "\n"
}

func money(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Render formats the full report for the terminal.
func Render(rep *Report) string {
	var b strings.Builder

	rows := make([][]string, 0, len(rep.SalesByRegion))
	for _, r := range rep.SalesByRegion {
		rows = append(rows, []string{r.Region, money(r.TotalSales), money(r.AvgProfit), strconv.FormatInt(r.Orders, 10)})
	}
	b.WriteString(renderTable("Sales by region", []string{"Region", "Total sales", "Avg profit", "Orders"}, rows))

	rows = rows[:0]
	for _, r := range rep.ReturnRates {
		rows = append(rows, []string{r.ShipMode, strconv.FormatInt(r.Orders, 10), strconv.FormatInt(r.Returned, 10), percent(r.ReturnRate)})
	}
	b.WriteString(renderTable("Return rate by ship mode", []string{"Ship mode", "Orders", "Returned", "Return rate"}, rows))

	rows = rows[:0]
	for _, r := range rep.TopCustomers {
		rows = append(rows, []string{r.CustomerID, r.Customer, money(r.TotalSales), strconv.FormatInt(r.Orders, 10)})
	}
	b.WriteString(renderTable("Top customers by sales", []string{"ID", "Customer", "Total sales", "Orders"}, rows))

	rows = rows[:0]
	for _, r := range rep.OrdersBySegment {
		rows = append(rows, []string{r.Segment, strconv.FormatInt(r.Orders, 10), percent(r.AvgDiscount)})
	}
	b.WriteString(renderTable("Order volume by segment", []string{"Segment", "Orders", "Avg discount"}, rows))

	rows = rows[:0]
	for _, r := range rep.TopProducts {
		rows = append(rows, []string{r.ProductID, r.Product, r.Category, fmt.Sprintf("%.4f", r.Score)})
	}
	b.WriteString(renderTable("Top products by importance", []string{"ID", "Product", "Category", "Score"}, rows))

	rows = rows[:0]
	for _, r := range rep.TopClusters {
		rows = append(rows, []string{strconv.FormatInt(r.Cluster, 10), strconv.FormatInt(r.Size, 10)})
	}
	b.WriteString(renderTable("Top product co-purchase clusters", []string{"Cluster", "Products"}, rows))

	return b.String()
}
