package cpu

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Dump renders the registers and the requested RAM cells as tables.
func (c *CPU) Dump(w io.Writer, addrs []uint16) {
	regTable := table.NewWriter()
	regTable.SetOutputMirror(w)
	regTable.SetTitle("Registers")
	regTable.AppendHeader(table.Row{"PC", "A", "D", "Cycles", "Running"})
	regTable.AppendRow(table.Row{c.PC, c.A.Int(), c.D.Int(), c.Cycles, c.Running})
	regTable.Render()

	if len(addrs) == 0 {
		return
	}

	ramTable := table.NewWriter()
	ramTable.SetOutputMirror(w)
	ramTable.SetTitle("RAM")
	ramTable.AppendHeader(table.Row{"Address", "Value", "Binary"})
	for _, addr := range addrs {
		if int(addr) >= len(c.RAM) {
			ramTable.AppendRow(table.Row{addr, "-", "unmapped"})
			continue
		}
		v := c.RAM[addr]
		ramTable.AppendRow(table.Row{addr, v.Int(), v.String()})
	}
	ramTable.Render()
}
