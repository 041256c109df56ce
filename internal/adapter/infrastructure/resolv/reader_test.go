//go:build unit

package resolv

import (
	"errors"
	"testing"

	"golang-ethmgr/internal/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReaderAdapter_Nameservers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files := mock.NewMockFileManager(ctrl)
	reader := NewReaderAdapter("", files)

	t.Run("ParsesInOrder", func(t *testing.T) {
		content := "# Generated by NetworkManager\nsearch lan\nnameserver 192.168.1.1\nnameserver 8.8.4.4\noptions timeout:2\n"
		files.EXPECT().ReadFile(DefaultPath).Return([]byte(content), nil)

		servers, err := reader.Nameservers()
		require.NoError(t, err)
		assert.Equal(t, []string{"192.168.1.1", "8.8.4.4"}, servers)
	})

	t.Run("NoNameservers", func(t *testing.T) {
		files.EXPECT().ReadFile(DefaultPath).Return([]byte("search lan\n"), nil)

		servers, err := reader.Nameservers()
		require.NoError(t, err)
		assert.Empty(t, servers)
	})

	t.Run("ReadError", func(t *testing.T) {
		files.EXPECT().ReadFile(DefaultPath).Return(nil, errors.New("failed to read file"))

		_, err := reader.Nameservers()
		assert.Error(t, err)
	})
}
