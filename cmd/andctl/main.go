package main

import (
	"github.com/advertisingnotdead/agency/internal/command"
	"github.com/advertisingnotdead/agency/internal/command/bootstrap"
	"github.com/advertisingnotdead/agency/internal/command/cases"
	"github.com/advertisingnotdead/agency/internal/command/leads"
	"github.com/advertisingnotdead/agency/internal/command/stats"
	"github.com/advertisingnotdead/agency/internal/command/users"
)

func main() {
	command.Main(
		"andctl", "an agency administration tool",
		bootstrap.Command(),
		cases.Command(),
		leads.Command(),
		users.Command(),
		stats.Command(),
	)
}
