package minecraft

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/ptr"

	minecraftv1alpha1 "github.com/ctron/minecraft-operator/api/v1alpha1"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/apply"
	"github.com/ctron/minecraft-operator/pkg/resource-handler/controller/metadata"
)

const (
	// DownloadImage fetches the server jar into the data volume.
	DownloadImage = "registry.access.redhat.com/ubi8-minimal"

	// ServerImage runs both the game server and the stunnel sidecar.
	ServerImage = "docker.io/ctron/minecraft-base:latest"

	// ServerJarURL is the pinned Minecraft server release.
	ServerJarURL = "https://launcher.mojang.com/v1/objects/a412fd69db1f81db3f511c1463fd304675244077/server.jar"

	serverMemory = "2Gi"
	tlsMemory    = "64Mi"
)

// Container and volume names inside the pod template.
const (
	containerDownload = "download"
	containerServer   = "server"
	containerTLS      = "tls"

	volumeData = "data"
	volumeLogs = "logs"
	volumeTLS  = "tls"
)

// downloadScript prepares the data volume. The jar is only fetched when it
// is missing so that restarts do not hit the network.
var downloadScript = fmt.Sprintf(`
mkdir -p /data/server
test -f /data/server/server.jar || curl %s -Ls -o /data/server/server.jar
echo "eula=true" > /data/eula.txt
`, ServerJarURL)

// MutateDeployment shapes dep into the single-replica server Deployment of
// mc. The pod runs the game server plus an stunnel sidecar terminating TLS
// with the certificate issued for the Service.
func MutateDeployment(dep *appsv1.Deployment, mc *minecraftv1alpha1.Minecraft, scheme *runtime.Scheme) error {
	names, err := namesFor(mc)
	if err != nil {
		return err
	}
	if err := apply.SetOwner(dep, mc, scheme); err != nil {
		return err
	}

	selector := metadata.BuildSelectorLabels(ComponentName, mc.Name)
	dep.Labels = metadata.MergeLabels(metadata.BuildStandardLabels(ComponentName, mc.Name), dep.Labels)

	dep.Spec.Replicas = ptr.To(int32(1))
	dep.Spec.Selector = &metav1.LabelSelector{MatchLabels: selector}
	dep.Spec.Strategy = appsv1.DeploymentStrategy{Type: appsv1.RecreateDeploymentStrategyType}

	tpl := &dep.Spec.Template
	tpl.Labels = metadata.MergeLabels(selector, tpl.Labels)

	pod := &tpl.Spec
	pod.ServiceAccountName = names.ServiceAccount

	// Each container is finished before the next lookup, the slice may grow.
	download := findOrAppendContainer(&pod.InitContainers, containerDownload)
	download.Image = DownloadImage
	download.Command = []string{"bash", "-c", downloadScript}
	setMount(download, volumeData, "/data", false)

	server := findOrAppendContainer(&pod.Containers, containerServer)
	server.Image = ServerImage
	server.WorkingDir = "/data"
	server.Command = []string{
		"java",
		"-XX:+PrintFlagsFinal",
		"-jar", "/data/server/server.jar",
		"--nogui",
		"--port", fmt.Sprint(ServerPort),
	}
	if err := setMemory(server, serverMemory); err != nil {
		return err
	}
	setMount(server, volumeData, "/data", false)
	setMount(server, volumeLogs, "/logs", false)
	setProbes(server, ServerPort)

	tls := findOrAppendContainer(&pod.Containers, containerTLS)
	tls.Image = ServerImage
	tls.Command = []string{"stunnel", "/etc/mctunnel.conf"}
	port := findOrAppendContainerPort(&tls.Ports, TLSPortName)
	port.ContainerPort = TLSPort
	port.Protocol = corev1.ProtocolTCP
	if err := setMemory(tls, tlsMemory); err != nil {
		return err
	}
	setMount(tls, volumeTLS, "/etc/mc-tls", true)
	setProbes(tls, TLSPort)

	data := findOrAppendVolume(&pod.Volumes, volumeData)
	if data.PersistentVolumeClaim == nil {
		data.VolumeSource = corev1.VolumeSource{PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{}}
	}
	data.PersistentVolumeClaim.ClaimName = names.Claim
	data.PersistentVolumeClaim.ReadOnly = false

	logs := findOrAppendVolume(&pod.Volumes, volumeLogs)
	if logs.EmptyDir == nil {
		logs.VolumeSource = corev1.VolumeSource{EmptyDir: &corev1.EmptyDirVolumeSource{}}
	}

	// DefaultMode is defaulted by the API server and left as found.
	secret := findOrAppendVolume(&pod.Volumes, volumeTLS)
	if secret.Secret == nil {
		secret.VolumeSource = corev1.VolumeSource{Secret: &corev1.SecretVolumeSource{}}
	}
	secret.Secret.SecretName = names.TLSSecret

	return nil
}
