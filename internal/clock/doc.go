// Package clock resolves the wall-clock time that fractime renders.
//
// Production code reads the time through the Clock interface so tests can
// substitute a fake clock. A time given on the command line as H:MM or HH:MM
// overrides the clock; malformed literals are skipped rather than rejected.
//
// Example usage:
//
//	t := clock.Resolve(clock.RealClock{}, os.Args[1:], nil)
//	fmt.Println(t)            // 09:40
//	fmt.Println(t.NextHour()) // 10
package clock
