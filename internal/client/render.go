package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Bold(true)
)

var userHeaders = []string{"ID", "NAME", "EMAIL", "CREATED", "UPDATED"}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func userRow(u models.User) []string {
	return []string{u.ID, u.Name, u.Email, formatTime(u.CreatedAt), formatTime(u.UpdatedAt)}
}

// renderUserPage draws one page of users followed by a paging summary.
func renderUserPage(page models.UserPage) string {
	t := newTable().Headers(userHeaders...)
	for _, u := range page.Data {
		t.Row(userRow(u)...)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(pageSummary(page)))
	return b.String()
}

func pageSummary(page models.UserPage) string {
	parts := []string{
		fmt.Sprintf("page %d of %d", page.PageNum, page.PageTotal),
		fmt.Sprintf("%d of %d users", page.Count, page.Total),
	}
	if page.HasPreviousPage {
		parts = append(parts, "prev: --page "+strconv.Itoa(page.PageNum-1))
	}
	if page.HasNextPage {
		parts = append(parts, "next: --page "+strconv.Itoa(page.PageNum+1))
	}
	return strings.Join(parts, " · ")
}

// renderUser draws a single user as a two-column table.
func renderUser(u models.User) string {
	t := newTable()
	for i, value := range userRow(u) {
		t.Row(userHeaders[i], value)
	}
	return t.Render()
}

func renderOK(format string, args ...any) string {
	return okStyle.Render(fmt.Sprintf(format, args...))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
