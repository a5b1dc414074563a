// Command bufrdump prints the decoded contents of one or more BUFR messages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mewkiz/bufr"
	"github.com/mewkiz/bufr/decoder"
	"github.com/mewkiz/bufr/table"
)

// flagTables contains the path to a JSON file of Table B/D definitions.
var flagTables string

func init() {
	flag.StringVar(&flagTables, "tables", "", "Path to a JSON file of Table B/D definitions.")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: bufrdump -tables=FILE FILE...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 || flagTables == "" {
		flag.Usage()
		os.Exit(1)
	}

	tables, err := table.LoadTables(flagTables)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	for _, path := range flag.Args() {
		if err := bufrdump(path, tables); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

func bufrdump(path string, tables *table.Tables) error {
	msg, err := bufr.Open(path, tables)
	if err != nil {
		return err
	}

	fmt.Printf("%s: edition %d, %d subset(s), compressed=%v\n",
		path, msg.Header.Indicator.EditionNumber, msg.Spec.SubsetCount, msg.Spec.Compressed)

	for _, ev := range msg.Events {
		printEvent(ev)
	}
	return nil
}

func printEvent(ev decoder.DataEvent) {
	switch ev.Kind {
	case decoder.EventSubsetStart:
		fmt.Printf("subset %d:\n", ev.SubsetIndex)
	case decoder.EventData:
		fmt.Printf("  %s = %s\n", ev.Entry.XY(), ev.Value)
	case decoder.EventCompressedData:
		fmt.Printf("  %s = %v\n", ev.Entry.XY(), ev.Values)
	case decoder.EventReplicationStart:
		fmt.Printf("  replication x%d:\n", ev.ReplicationCount)
	case decoder.EventSequenceStart:
		fmt.Printf("  sequence %s:\n", ev.Sequence.XY())
	case decoder.EventOperatorHandled:
		fmt.Printf("  operator 2 %02d %03d\n", ev.Operator.X, ev.Operator.Y)
	}
}
