package commands

import "github.com/mgutz/ansi"

var yellow = ansi.ColorFunc("yellow+b")
var green = ansi.ColorFunc("green+b")
