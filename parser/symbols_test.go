package parser_test

import (
	"testing"

	"github.com/lookbusy1344/mips-assembler/parser"
)

func TestSymbolTable_DefineLabel(t *testing.T) {
	st := parser.NewSymbolTable(parser.CodeSegmentOffset)

	if err := st.DefineLabel("loop", 0, parser.Position{Filename: "test.s", Line: 1}); err != nil {
		t.Fatalf("failed to define label: %v", err)
	}
	if err := st.DefineLabel("done", 5, parser.Position{Filename: "test.s", Line: 9}); err != nil {
		t.Fatalf("failed to define label: %v", err)
	}

	loop, ok := st.Label("loop")
	if !ok {
		t.Fatal("label 'loop' not found")
	}
	if loop.IndexPlusOne != 1 {
		t.Errorf("expected IndexPlusOne=1, got %d", loop.IndexPlusOne)
	}
	if loop.Address != 0x00400000 {
		t.Errorf("expected address 0x00400000, got 0x%08x", loop.Address)
	}

	done, ok := st.Label("done")
	if !ok {
		t.Fatal("label 'done' not found")
	}
	if done.IndexPlusOne != 6 {
		t.Errorf("expected IndexPlusOne=6, got %d", done.IndexPlusOne)
	}
	if done.Address != 0x00400014 {
		t.Errorf("expected address 0x00400014, got 0x%08x", done.Address)
	}
}

func TestSymbolTable_CustomOffset(t *testing.T) {
	st := parser.NewSymbolTable(0x1000)

	if err := st.DefineLabel("entry", 2, parser.Position{Line: 1}); err != nil {
		t.Fatalf("failed to define label: %v", err)
	}
	entry, ok := st.Label("entry")
	if !ok {
		t.Fatal("label 'entry' not found")
	}
	if entry.Address != 0x1008 {
		t.Errorf("expected address 0x1008, got 0x%08x", entry.Address)
	}
}

func TestSymbolTable_DuplicateLabel(t *testing.T) {
	st := parser.NewSymbolTable(parser.CodeSegmentOffset)

	if err := st.DefineLabel("loop", 0, parser.Position{Line: 1}); err != nil {
		t.Fatalf("failed to define label: %v", err)
	}
	err := st.DefineLabel("loop", 4, parser.Position{Line: 8})
	if err == nil {
		t.Fatal("expected error for duplicate label definition")
	}
	if err.Kind != parser.ErrorUnexpectedSymbol {
		t.Errorf("expected ErrorUnexpectedSymbol, got %v", err.Kind)
	}
	if err.Lexeme != "loop" {
		t.Errorf("expected lexeme 'loop', got %q", err.Lexeme)
	}
}

func TestSymbolTable_EndFunction(t *testing.T) {
	st := parser.NewSymbolTable(parser.CodeSegmentOffset)

	if err := st.DefineLabel("fn", 0, parser.Position{Line: 1}); err != nil {
		t.Fatalf("failed to define label: %v", err)
	}
	if err := st.EndFunction("fn", parser.Position{Line: 3}); err != nil {
		t.Fatalf("failed to end function: %v", err)
	}

	addr, ok := st.Function("fn")
	if !ok {
		t.Fatal("function 'fn' not found")
	}
	if addr != 0x00400000 {
		t.Errorf("expected address 0x00400000, got 0x%08x", addr)
	}
}

func TestSymbolTable_EndFunctionClearsPendingWindow(t *testing.T) {
	st := parser.NewSymbolTable(parser.CodeSegmentOffset)

	if err := st.DefineLabel("fn", 0, parser.Position{Line: 1}); err != nil {
		t.Fatalf("failed to define label: %v", err)
	}
	if err := st.EndFunction("fn", parser.Position{Line: 3}); err != nil {
		t.Fatalf("failed to end function: %v", err)
	}

	// The window is cleared: a second .end for the same label fails.
	err := st.EndFunction("fn", parser.Position{Line: 4})
	if err == nil {
		t.Fatal("expected error for .end outside the pending window")
	}
	if err.Kind != parser.ErrorUnexpectedSymbol {
		t.Errorf("expected ErrorUnexpectedSymbol, got %v", err.Kind)
	}

	// A label defined after the .end opens a fresh window.
	if err := st.DefineLabel("helper", 2, parser.Position{Line: 5}); err != nil {
		t.Fatalf("failed to define label: %v", err)
	}
	if err := st.EndFunction("helper", parser.Position{Line: 7}); err != nil {
		t.Fatalf("failed to end function: %v", err)
	}
	if _, ok := st.Function("helper"); !ok {
		t.Error("function 'helper' not found")
	}
}

func TestSymbolTable_EndFunctionUnknownLabel(t *testing.T) {
	st := parser.NewSymbolTable(parser.CodeSegmentOffset)

	err := st.EndFunction("nowhere", parser.Position{Line: 1})
	if err == nil {
		t.Fatal("expected error for unknown label")
	}
	if err.Kind != parser.ErrorUnexpectedSymbol {
		t.Errorf("expected ErrorUnexpectedSymbol, got %v", err.Kind)
	}
	if err.Lexeme != "nowhere" {
		t.Errorf("expected lexeme 'nowhere', got %q", err.Lexeme)
	}
}
