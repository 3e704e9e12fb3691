// Package mem provides aligned buffer allocation for handles.
package mem
