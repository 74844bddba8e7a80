package client

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderUsers(page models.UserPage) string {
	rows := make([][]string, 0, len(page.Data))
	for _, u := range page.Data {
		rows = append(rows, []string{strconv.FormatInt(u.ID, 10), u.Name, u.Email})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "NAME", "EMAIL").
		Rows(rows...)

	footer := helpStyle.Render(fmt.Sprintf("Page %d of %d, %d users, %d per page",
		page.CurrentPage, page.TotalPages, page.TotalItems, page.PageSize))

	return lipgloss.JoinVertical(lipgloss.Left, t.String(), footer)
}

func renderUser(user models.User) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("User #%d", user.ID)),
		"Name:  "+user.Name,
		"Email: "+user.Email,
	)
}

const usage = `Usage: user-keeper-client [flags] <command> [operands]

Commands:
  list [page] [pageSize]        list users
  get <id>                      show one user
  create <name> <email>         create a user
  update <id> <name> <email>    replace name and email of a user
  delete <id>                   delete a user
  version                       print the server version
  build-info                    print the client build information`

func renderUsage() string {
	return helpStyle.Render(usage)
}
