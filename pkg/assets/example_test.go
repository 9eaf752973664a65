package assets_test

import (
	"fmt"

	"github.com/matzehuels/datanate/pkg/assets"
)

func ExampleHashedName() {
	a := assets.HashedName("style.css", []byte("body{}"))
	b := assets.HashedName("style.css", []byte("body{}"))
	c := assets.HashedName("style.css", []byte("body{margin:0}"))

	fmt.Println("same content, same name:", a == b)
	fmt.Println("changed content, same name:", a == c)
	fmt.Println("hashed:", assets.IsHashedName(a))
	// Output:
	// same content, same name: true
	// changed content, same name: false
	// hashed: true
}

func ExampleBuildImportMap() {
	manifest := assets.Manifest{"helpers.js": "assets/helpers-0a1b2c3d.js"}
	modules := []assets.VendoredModule{
		{Name: "d3-scale", Dir: "d3/d3-scale-9f8e7d6c", Entry: "index.js"},
	}
	m := assets.BuildImportMap(manifest, []string{"helpers.js"}, modules)

	data, _ := m.JSON()
	fmt.Println(string(data))
	// Output:
	// {"imports":{"/assets/helpers.js":"/assets/helpers-0a1b2c3d.js","d3-scale":"/d3/d3-scale-9f8e7d6c/index.js","helpers.js":"/assets/helpers-0a1b2c3d.js"}}
}
