// Package uitest provides helpers for driving Bubble Tea models in tests.
//
//	func TestViewer(t *testing.T) {
//	    t.Parallel()
//
//	    tm := uitest.NewTestModel(t, ui.NewModel(nil, viewport.Default), uitest.Compact)
//	    tm.Send(uitest.Key("a"))
//	    tm.Send(uitest.Key("q"))
//
//	    m := uitest.FinalModel[*ui.Model](t, tm, time.Second)
//	}
package uitest
