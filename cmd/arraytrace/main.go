package main

import (
	"os"

	"github.com/yang-zzhong/dynarr"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("arraytrace", "Replay a push/pop/insert/delete/get sequence and print the array after each call.")
	app.HelpFlag.Short('h')
	dump := app.Flag("dump", "print a verbose dump of the array instead of the compact form").Bool()
	capacity := app.Flag("capacity", "initial capacity of the array").Default("0").Int()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	printer := dynarr.NewWriterPrinter(os.Stdout)
	arr := dynarr.Trace(dynarr.New[int](dynarr.WithCapacity(*capacity)), printer).Verbose(*dump)
	app.FatalIfError(replay(arr), "replay")
	app.FatalIfError(printer.Err(), "write")
}

func replay(arr *dynarr.Traced[int]) error {
	arr.Push(6)
	arr.Push(2)
	arr.Push(9)
	if _, err := arr.Pop(); err != nil {
		return err
	}
	arr.Push(45)
	arr.Push(12)
	arr.Push(67)
	if err := arr.Insert(3, 10); err != nil {
		return err
	}
	if err := arr.Delete(4); err != nil {
		return err
	}
	_, err := arr.Get(1)
	return err
}
