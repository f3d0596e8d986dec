package host

import "fmt"

func ExampleNewMapEnvFromEnviron() {
	env := NewMapEnvFromEnviron([]string{"A=B", "C=D", "E", "F=G=H"})

	fmt.Printf("Environ(): %q\n", env.Environ())
	fmt.Printf("Getenv(\"F\"): %q\n", env.Getenv("F"))

	// Output: Environ(): ["A=B" "C=D" "E=" "F=G=H"]
	// Getenv("F"): "G=H"
}

func ExampleMapEnv_LookupEnv() {
	env := NewMapEnv()
	env.Setenv("A", "B")

	val, ok := env.LookupEnv("A")
	fmt.Println("Existing", "val:", val, "ok:", ok)
	val, ok = env.LookupEnv("B")
	fmt.Println("Missing", "val:", val, "ok:", ok)

	// Output: Existing val: B ok: true
	// Missing val:  ok: false
}

func ExampleMapEnv_Getenv() {
	env := NewMapEnv()
	env.Setenv("TEST_VAR", "test_value")

	fmt.Printf("%q %q\n", env.Getenv("TEST_VAR"), env.Getenv("UNSET"))

	// Output: "test_value" ""
}
