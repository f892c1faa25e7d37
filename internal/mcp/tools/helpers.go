package tools

import (
	"fmt"
	"strings"

	"github.com/honeycarbs/jobboard/internal/session"
)

func formatPage(tool string, page session.Page) string {
	var sb strings.Builder

	if page.FetchError != "" {
		fmt.Fprintf(&sb, "[%s] Jobs could not be loaded: %s\n", tool, page.FetchError)
	}

	if page.TotalItems == 0 {
		fmt.Fprintf(&sb, "[%s] No jobs found (session %s)", tool, page.SessionID)
		return sb.String()
	}

	fmt.Fprintf(&sb, "[%s] Page %d of %d, %d job(s) (session %s)\n",
		tool, page.Meta.CurrentPage, page.Meta.TotalPages, page.TotalItems, page.SessionID)

	for _, j := range page.Jobs {
		fmt.Fprintf(&sb, "\n- #%d %s | %s | %s", j.ID, j.Title, j.Company, j.Location)
		if len(j.Technologies) > 0 {
			fmt.Fprintf(&sb, " [%s]", strings.Join(j.Technologies, ", "))
		}
		if j.Applied {
			sb.WriteString(" (applied)")
		}
	}

	return sb.String()
}
