// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tpsoete/json17"
)

func Example() {
	mk := json17.ToValue[json17.Unique]

	var j json17.JSON
	first, _ := j.Key("first")
	*first = json17.NewObject(
		json17.Field("1", json17.NewArray(mk(123), mk("456"), mk(false), mk(nil))),
		json17.Field("2", json17.NewObject(
			json17.Field("123", mk("456")),
			json17.Field("877", mk(nil)),
		)),
	)
	j.Key("second") // vivified as null
	third, _ := j.Key("third")
	*third = json17.NewArray(mk(false), mk(7e40))

	obj, _ := j.Obj()
	obj.Set("fourth", json17.NewObject[json17.Unique]())
	third.Append(mk(9), json17.NewObject[json17.Unique]())

	inner, err := j.Find("first")
	if err != nil {
		log.Fatalf("Find: %v", err)
	}
	ones, _ := inner.Find("1")
	fmt.Printf("first[1] has %d elements\n", ones.Len())

	fmt.Println(j.DumpString())
	fmt.Println()
	if err := j.Dump(os.Stdout, json17.DumpOptions{Indent: 4}); err != nil {
		log.Fatalf("Dump: %v", err)
	}
	// Output:
	// first[1] has 4 elements
	// {"first": {"1": [123,"456",false,null],"2": {"123": "456","877": null}},"fourth": {},"second": null,"third": [false,6.9999999999999998e+40,9,{}]}
	//
	// {
	//     "first": {
	//         "1": [
	//             123,
	//             "456",
	//             false,
	//             null
	//         ],
	//         "2": {
	//             "123": "456",
	//             "877": null
	//         }
	//     },
	//     "fourth": {},
	//     "second": null,
	//     "third": [
	//         false,
	//         6.9999999999999998e+40,
	//         9,
	//         {}
	//     ]
	// }
}

func Example_load() {
	v, err := json17.ParseString[json17.Unique](`{"servers": ["alpha", "beta"], "retries": 3}`)
	if err != nil {
		log.Fatalf("Parse: %v", err)
	}
	servers, err := v.Find("servers")
	if err != nil {
		log.Fatalf("Find: %v", err)
	}
	name, _ := servers.At(0)
	s, _ := name.Str()
	fmt.Println(s)
	fmt.Println(v.DumpString())
	// Output:
	// alpha
	// {"retries": 3,"servers": ["alpha","beta"]}
}
