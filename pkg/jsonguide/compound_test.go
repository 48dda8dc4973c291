package jsonguide_test

import (
	"testing"

	"github.com/deepankarm/jsonguide/pkg/jsonguide"
	"github.com/deepankarm/jsonguide/pkg/jsonguide/schema"
)

type completeCase struct {
	name string
	text string
	want []jsonguide.Fragment
}

func runComplete(t *testing.T, node *schema.Node, tests []completeCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFragments(t, tt.text, jsonguide.Complete(tt.text, node), tt.want)
		})
	}
}

func TestCompleteArrayOfStrings(t *testing.T) {
	node := schema.Array(schema.String())
	runComplete(t, node, []completeCase{
		{"empty opens the array", ``, frags(lit("["))},
		{"first item", `[`, frags(lit(`"`))},
		{"first item after space", `[ `, frags(lit(`"`))},
		{"item open", `["a`, frags(open)},
		{"item closed", `["a"`, frags(lit(", "), litEnd("]"))},
		{"after comma", `["a", `, frags(lit(`"`))},
		{"second item closed", `["a", "b"`, frags(lit(", "), litEnd("]"))},
		{"closed", `["a"]`, frags(end)},
		{"closed with space", ` ["a" , "b" ] `, frags(end)},
		{"empty array", `[]`, frags(end)},
		{"empty array with space", `[ ] `, frags(end)},
		{"bracket inside item", `["]"`, frags(lit(", "), litEnd("]"))},
		{"not an array", `"a"`, nil},
		{"missing comma", `["a" "b"`, nil},
		{"trailing comma", `["a",]`, nil},
		{"text after close", `["a"] x`, nil},
		{"wrong item kind", `[1`, nil},
	})
}

func TestCompleteArrayOfNumbers(t *testing.T) {
	node := schema.Array(schema.Number())
	runComplete(t, node, []completeCase{
		{"first item", `[`, frags(digits, lit("+"), lit("-"), lit("."))},
		{"ambiguous item carries its continuations", `[12`, frags(lit(", "), litEnd("]"), digits, lit("."), lit("e"))},
		{"unfinished fraction", `[1.`, frags(digits)},
		{"unfinished exponent", `[1e`, frags(digits, lit("+"), lit("-"))},
		{"after comma", `[12,`, frags(digits, lit("+"), lit("-"), lit("."))},
		{"space ends the item", `[12 `, frags(lit(", "), litEnd("]"))},
		{"second item ambiguous", `[1, 2.5`, frags(lit(", "), litEnd("]"), digits, lit("e"))},
		{"closed", `[1, 2]`, frags(end)},
		{"plus sign item", `[+5`, frags(lit(", "), litEnd("]"), digits, lit("."), lit("e"))},
		{"leading dot item", `[.5`, frags(lit(", "), litEnd("]"), digits, lit("e"))},
		{"leading zero item", `[05`, frags(lit(", "), litEnd("]"), digits, lit("."), lit("e"))},
		{"after plus sign item", `[+5, `, frags(digits, lit("+"), lit("-"), lit("."))},
		{"lenient items closed", `[+5, .5]`, frags(end)},
		{"unfinished lenient fraction", `[+.`, frags(digits)},
	})
}

func TestCompleteArrayOfBooleans(t *testing.T) {
	node := schema.Array(schema.Boolean())
	runComplete(t, node, []completeCase{
		{"first item", `[`, frags(lit("true"), lit("false"))},
		{"item prefix", `[tr`, frags(lit("ue"))},
		{"item done", `[true`, frags(lit(", "), litEnd("]"))},
		{"wrong letter", `[x`, nil},
	})
}

func TestCompleteNestedArrays(t *testing.T) {
	node := schema.Array(schema.Array(schema.Number()))
	runComplete(t, node, []completeCase{
		{"outer open", `[`, frags(lit("["))},
		{"inner ambiguous", `[[1`, frags(lit(", "), lit("]"), digits, lit("."), lit("e"))},
		{"inner closed", `[[1]`, frags(lit(", "), litEnd("]"))},
		{"second inner", `[[1], [`, frags(digits, lit("+"), lit("-"), lit("."))},
		{"closed", `[[1], [2, 3]]`, frags(end)},
	})
}

func TestCompleteObject(t *testing.T) {
	one := schema.Object(schema.Prop("coucou", schema.String()))
	two := schema.Object(
		schema.Prop("coucou", schema.String()),
		schema.Prop("caca", schema.Boolean()),
	)

	t.Run("one property", func(t *testing.T) {
		runComplete(t, one, []completeCase{
			{"empty opens the object", ``, frags(lit("{"))},
			{"first key", `{`, frags(lit(`"coucou":`))},
			{"text ends at the colon", `{"coucou":`, frags(lit(`"`))},
			{"value closed", `{"coucou":"a"`, frags(litEnd("}"))},
			{"closed", `{"coucou":"a"}`, frags(end)},
		})
	})

	t.Run("two properties", func(t *testing.T) {
		runComplete(t, two, []completeCase{
			{"first key", `{`, frags(lit(`"coucou":`))},
			{"first key after space", `{ `, frags(lit(`"coucou":`))},
			{"partial key", `{"cou`, frags(lit(`cou":`))},
			{"key without colon", `{"coucou"`, frags(lit(":"))},
			{"key and space without colon", `{"coucou" `, frags(lit(":"))},
			{"value expected", `{"coucou":`, frags(lit(`"`))},
			{"value after spaced colon", `{"coucou" : `, frags(lit(`"`))},
			{"value open", `{"coucou":"a`, frags(open)},
			{"second key", `{"coucou":"a"`, frags(lit(`, "caca":`))},
			{"second key after comma", `{"coucou":"a",`, frags(lit(`"caca":`))},
			{"second key after comma and space", `{"coucou":"a", `, frags(lit(`"caca":`))},
			{"second value", `{"coucou":"a", "caca": `, frags(lit("true"), lit("false"))},
			{"second value prefix", `{"coucou":"a", "caca": tr`, frags(lit("ue"))},
			{"all present", `{"coucou":"a", "caca": true`, frags(litEnd("}"))},
			{"closed", `{"coucou":"a", "caca": true}`, frags(end)},
			{"closed with space", ` { "coucou" : "a" , "caca" : false } `, frags(end)},
			{"key out of order", `{"caca":`, nil},
			{"unknown key", `{"other"`, nil},
			{"closed early", `{"coucou":"a"}`, nil},
			{"missing comma", `{"coucou":"a" "caca"`, nil},
			{"extra member", `{"coucou":"a", "caca": true,`, nil},
			{"not an object", `[`, nil},
		})
	})
}

func TestCompleteObjectCarriesNumbers(t *testing.T) {
	last := schema.Object(schema.Prop("n", schema.Number()))
	runComplete(t, last, []completeCase{
		{"ambiguous last value", `{"n": 12`, frags(litEnd("}"), digits, lit("."), lit("e"))},
		{"plus sign value", `{"n": +5`, frags(litEnd("}"), digits, lit("."), lit("e"))},
		{"leading dot value closed", `{"n": .5}`, frags(end)},
		{"unfinished last value", `{"n": 12e`, frags(digits, lit("+"), lit("-"))},
		{"closed", `{"n": 12}`, frags(end)},
	})

	first := schema.Object(
		schema.Prop("n", schema.Number()),
		schema.Prop("b", schema.Boolean()),
	)
	runComplete(t, first, []completeCase{
		{"ambiguous value before next key", `{"n": 12`, frags(lit(`, "b":`), digits, lit("."), lit("e"))},
		{"comma resolves the value", `{"n": 12,`, frags(lit(`"b":`))},
	})
}

func TestCompleteEmptyObject(t *testing.T) {
	runComplete(t, schema.Object(), []completeCase{
		{"open", `{`, frags(litEnd("}"))},
		{"closed", `{}`, frags(end)},
		{"member", `{"a"`, nil},
	})
}

func TestCompleteNestedObjects(t *testing.T) {
	node := schema.Object(
		schema.Prop("name", schema.String()),
		schema.Prop("mayor", schema.Object(
			schema.Prop("terms", schema.Number()),
		)),
		schema.Prop("cities", schema.Array(schema.Object(
			schema.Prop("name", schema.String()),
		))),
	)
	runComplete(t, node, []completeCase{
		{"first value", `{"name":`, frags(lit(`"`))},
		{"nested object opens", `{"name":"Paris", "mayor":`, frags(lit("{"))},
		{"nested value", `{"name":"Paris", "mayor":{"terms":`, frags(digits, lit("+"), lit("-"), lit("."))},
		{"nested key", `{"name":"Paris", "mayor":{`, frags(lit(`"terms":`))},
		{"nested close withholds end", `{"name":"Paris", "mayor":{"terms":2`, frags(lit("}"), digits, lit("."), lit("e"))},
		{"after nested object", `{"name":"Paris", "mayor":{"terms":2}`, frags(lit(`, "cities":`))},
		{"array of objects", `{"name":"Paris", "mayor":{"terms":2}, "cities":[`, frags(lit("{"))},
		{"value of object in array", `{"name":"Paris", "mayor":{"terms":2}, "cities":[{"name":`, frags(lit(`"`))},
		{"object in array", `{"name":"Paris", "mayor":{"terms":2}, "cities":[{"name":"Lyon"`, frags(lit("}"))},
		{"array of objects closes", `{"name":"Paris", "mayor":{"terms":2}, "cities":[{"name":"Lyon"}`, frags(lit(", "), lit("]"))},
		{"done", `{"name":"Paris", "mayor":{"terms":2}, "cities":[{"name":"Lyon"}]`, frags(litEnd("}"))},
	})
}

func TestCompleteEscapedKeys(t *testing.T) {
	node := schema.Object(
		schema.Prop(`say "hi"`, schema.Boolean()),
		schema.Prop("<tag>", schema.Boolean()),
	)
	runComplete(t, node, []completeCase{
		{"quote in key", `{`, frags(lit(`"say \"hi\"":`))},
		{"html is not escaped", `{"say \"hi\"": true`, frags(lit(`, "<tag>":`))},
	})
}
