// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"strings"
	"testing"
)

const manifestFixture = `<manifest xmlns:android="http://schemas.android.com/apk/res/android"
    xmlns:tools="http://schemas.android.com/tools"
    package="com.old.app">
    <application
        android:name="${applicationName}"
        android:label="Old App"
        android:icon="@mipmap/ic_launcher">
        <activity
            android:name=".MainActivity"
            android:exported="true" />
    </application>
</manifest>
`

func TestSpliceManifestPackage(t *testing.T) {
	t.Parallel()

	out, matched := spliceManifestPackage(manifestFixture, "com.new.app")
	if !matched {
		t.Fatal("package attribute not matched")
	}
	if !strings.Contains(out, `package="com.new.app"`) {
		t.Error("package attribute not rewritten")
	}

	// Attribute isolation: every byte outside the matched region is intact,
	// so removing the one changed substring from both sides must leave
	// identical text.
	before := strings.Replace(manifestFixture, `package="com.old.app"`, "", 1)
	after := strings.Replace(out, `package="com.new.app"`, "", 1)
	if before != after {
		t.Error("bytes outside the package attribute changed")
	}
}

func TestRewriteManifestLabel(t *testing.T) {
	t.Parallel()

	out, matched := rewriteManifestLabel(manifestFixture)
	if !matched {
		t.Fatal("label attribute not matched")
	}
	if !strings.Contains(out, `android:label="@string/app_name"`) {
		t.Error("label not pointed at the string resource")
	}
	if strings.Contains(out, "Old App") {
		t.Error("literal label still present")
	}
}

func TestManifestRewritesIdempotent(t *testing.T) {
	t.Parallel()

	once, _ := spliceManifestPackage(manifestFixture, "com.new.app")
	once, _ = rewriteManifestLabel(once)

	twice, _ := spliceManifestPackage(once, "com.new.app")
	twice, _ = rewriteManifestLabel(twice)

	if once != twice {
		t.Error("manifest rewrites are not idempotent")
	}
}
