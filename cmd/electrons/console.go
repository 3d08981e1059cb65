package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"electrons/internal/commands"
	"electrons/internal/domain"
	"electrons/internal/service"
)

var errQuit = errors.New("quit")

const help = `commands:
  click [generator]   operate a manual generator (default clicker)
  buy <generator>     buy one generator unit
  upgrade <upgrade>   buy one upgrade tier
  status              show balance, generators and upgrades
  quit`

// parseLine maps one console line to a command.
func parseLine(line string) (commands.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return commands.SyncState{ID: commands.NewID()}, nil
	}

	arg := func() (string, error) {
		if len(fields) != 2 {
			return "", fmt.Errorf("usage: %s <id>", fields[0])
		}
		return fields[1], nil
	}

	switch strings.ToLower(fields[0]) {
	case "click", "c":
		id := domain.GeneratorID("clicker")
		if len(fields) > 1 {
			id = domain.GeneratorID(fields[1])
		}
		return &commands.Click{ID: commands.NewID(), GeneratorID: id}, nil
	case "buy", "b":
		id, err := arg()
		if err != nil {
			return nil, err
		}
		return commands.BuyGenerator{ID: commands.NewID(), GeneratorID: domain.GeneratorID(id)}, nil
	case "upgrade", "u":
		id, err := arg()
		if err != nil {
			return nil, err
		}
		return commands.BuyUpgrade{ID: commands.NewID(), UpgradeID: domain.UpgradeID(id)}, nil
	case "status", "s":
		return commands.SyncState{ID: commands.NewID()}, nil
	case "quit", "q", "exit":
		return nil, errQuit
	}
	return nil, fmt.Errorf("unknown command %q", fields[0])
}

// runConsole reads commands from in until quit, EOF or ctx is done.
// On quit or cancellation it returns at once, but the reader goroutine may
// stay blocked in Scan until the next line or EOF arrives on in.
func runConsole(ctx context.Context, svc *service.GameService, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- sc.Err()
	}()

	fmt.Fprintln(out, help)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			cmd, err := parseLine(line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if _, err := svc.Execute(cmd); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if _, ok := cmd.(commands.SyncState); ok {
				printState(out, svc.GetState())
				continue
			}
			fmt.Fprintf(out, "balance %s\n", svc.GetState().Balance.StringFixed(2))
		}
	}
}

func printState(out io.Writer, st domain.State) {
	fmt.Fprintf(out, "balance %s\n", st.Balance.StringFixed(2))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GENERATOR\tMODE\tQTY\tOUTPUT\tNEXT COST")
	for _, g := range st.Generators {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", g.ID, g.Mode, g.Quantity, g.Production.StringFixed(2), g.Cost.StringFixed(2))
	}
	fmt.Fprintln(tw, "UPGRADE\tTARGET\tTIER\t\tNEXT COST")
	for _, u := range st.Upgrades {
		fmt.Fprintf(tw, "%s\t%s\t%d\t\t%s\n", u.ID, u.Target, u.PurchaseCount, u.Cost.StringFixed(2))
	}
	tw.Flush()
}
